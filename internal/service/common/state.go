//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/stevenraymond8592-create/AI-Commitment/internal/pb/v1"
)

// RemoteSlide is a slide as received from the server.
type RemoteSlide struct {
	ID           int
	Title        string
	Subtitle     string
	Rationale    string
	ActionStep   string
	Example      string
	RevisionPlan string
	Color        string
	Icon         string
}

// RemoteState is the carousel state as received from the server.
type RemoteState struct {
	// ActiveIndex is the zero-based index of the displayed slide.
	ActiveIndex int
	// IsTransitioning is true during the settle window.
	IsTransitioning bool
	// Total is the number of slides.
	Total int
	// Generation counts accepted navigations on the server.
	Generation uint64
	// Outcome is "accepted", "unchanged" or "ignored" for navigation calls, empty otherwise.
	Outcome string
	// ChangedAt is the time of the last accepted navigation, zero before any.
	ChangedAt time.Time
	// Slide is the displayed slide.
	Slide RemoteSlide
}

// ParseState converts the wire struct into a RemoteState. Missing fields
// keep their zero values.
func ParseState(s *structpb.Struct) *RemoteState {
	fields := s.GetFields()

	state := &RemoteState{
		ActiveIndex:     int(fields[pb.FieldActiveIndex].GetNumberValue()),
		IsTransitioning: fields[pb.FieldIsTransitioning].GetBoolValue(),
		Total:           int(fields[pb.FieldTotal].GetNumberValue()),
		Generation:      uint64(fields[pb.FieldGeneration].GetNumberValue()),
		Outcome:         fields[pb.FieldOutcome].GetStringValue(),
		Slide:           parseSlide(fields[pb.FieldSlide].GetStructValue()),
	}

	if raw := fields[pb.FieldChangedAt].GetStringValue(); raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			state.ChangedAt = ts
		}
	}

	return state
}

// String renders the state as one human-readable line, for example
// "[2/3] Hyper-Personalization (transitioning)".
func (s *RemoteState) String() string {
	if s == nil {
		return "<nil state>"
	}

	line := fmt.Sprintf("[%d/%d] %s", s.ActiveIndex+1, s.Total, s.Slide.Title)

	if s.IsTransitioning {
		line += " (transitioning)"
	}

	if s.Outcome != "" && s.Outcome != "accepted" {
		line += " - " + s.Outcome
	}

	return line
}

// parseSlide converts a slide struct into a RemoteSlide.
func parseSlide(s *structpb.Struct) RemoteSlide {
	fields := s.GetFields()

	return RemoteSlide{
		ID:           int(fields[pb.SlideFieldID].GetNumberValue()),
		Title:        fields[pb.SlideFieldTitle].GetStringValue(),
		Subtitle:     fields[pb.SlideFieldSubtitle].GetStringValue(),
		Rationale:    fields[pb.SlideFieldRationale].GetStringValue(),
		ActionStep:   fields[pb.SlideFieldActionStep].GetStringValue(),
		Example:      fields[pb.SlideFieldExample].GetStringValue(),
		RevisionPlan: fields[pb.SlideFieldRevisionPlan].GetStringValue(),
		Color:        fields[pb.SlideFieldColor].GetStringValue(),
		Icon:         fields[pb.SlideFieldIcon].GetStringValue(),
	}
}
