package carousel

import (
	"context"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	pb "github.com/stevenraymond8592-create/AI-Commitment/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	State(ctx context.Context) domain.Snapshot
	Navigate(ctx context.Context, target int) domain.Outcome
	Next(ctx context.Context) domain.Outcome
	Previous(ctx context.Context) domain.Outcome
	Slides(ctx context.Context) []domain.Slide
}

// Server implements the CarouselService gRPC API.
type Server struct {
	pb.UnimplementedCarouselServiceServer

	// service provides the navigation logic.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetState returns the current carousel state.
func (s *Server) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return ToProtoState(s.service.State(ctx), ""), nil
}

// Navigate requests an absolute slide index. Any integer is accepted.
func (s *Server) Navigate(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	outcome := s.service.Navigate(ctx, saturatingInt(req.GetValue()))

	return ToProtoState(outcome.State, outcome.Result.String()), nil
}

// Next requests the slide after the active one.
func (s *Server) Next(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	outcome := s.service.Next(ctx)

	return ToProtoState(outcome.State, outcome.Result.String()), nil
}

// Previous requests the slide before the active one.
func (s *Server) Previous(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	outcome := s.service.Previous(ctx)

	return ToProtoState(outcome.State, outcome.Result.String()), nil
}

// ListSlides returns every slide in display order.
func (s *Server) ListSlides(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	slides := s.service.Slides(ctx)

	values := make([]*structpb.Value, 0, len(slides))
	for _, slide := range slides {
		values = append(values, structpb.NewStructValue(ToProtoSlide(slide)))
	}

	return &structpb.ListValue{Values: values}, nil
}

// ToProtoState converts a domain snapshot into the wire struct.
// An empty outcome is omitted, which is the case for plain state reads.
func ToProtoState(state domain.Snapshot, outcome string) *structpb.Struct {
	fields := map[string]*structpb.Value{
		pb.FieldActiveIndex:     structpb.NewNumberValue(float64(state.ActiveIndex)),
		pb.FieldIsTransitioning: structpb.NewBoolValue(state.IsTransitioning),
		pb.FieldTotal:           structpb.NewNumberValue(float64(state.Total)),
		pb.FieldGeneration:      structpb.NewNumberValue(float64(state.Generation)),
		pb.FieldSlide:           structpb.NewStructValue(ToProtoSlide(state.Slide)),
	}

	if outcome != "" {
		fields[pb.FieldOutcome] = structpb.NewStringValue(outcome)
	}

	if !state.ChangedAt.IsZero() {
		fields[pb.FieldChangedAt] = structpb.NewStringValue(state.ChangedAt.UTC().Format(time.RFC3339Nano))
	}

	return &structpb.Struct{Fields: fields}
}

// ToProtoSlide converts a domain slide into the wire struct.
func ToProtoSlide(slide domain.Slide) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			pb.SlideFieldID:           structpb.NewNumberValue(float64(slide.ID)),
			pb.SlideFieldTitle:        structpb.NewStringValue(slide.Title),
			pb.SlideFieldSubtitle:     structpb.NewStringValue(slide.Subtitle),
			pb.SlideFieldRationale:    structpb.NewStringValue(slide.Rationale),
			pb.SlideFieldActionStep:   structpb.NewStringValue(slide.ActionStep),
			pb.SlideFieldExample:      structpb.NewStringValue(slide.Example),
			pb.SlideFieldRevisionPlan: structpb.NewStringValue(slide.RevisionPlan),
			pb.SlideFieldColor:        structpb.NewStringValue(slide.Color),
			pb.SlideFieldIcon:         structpb.NewStringValue(slide.Icon),
		},
	}
}

// saturatingInt narrows a wire integer to int without wrapping around on
// 32-bit platforms; the policy treats any out-of-range value the same way.
func saturatingInt(v int64) int {
	switch {
	case v > math.MaxInt:
		return math.MaxInt
	case v < math.MinInt:
		return math.MinInt
	default:
		return int(v)
	}
}
