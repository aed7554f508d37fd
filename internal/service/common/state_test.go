//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	api "github.com/stevenraymond8592-create/AI-Commitment/internal/api/grpc/carousel"
	domain "github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

// TestParseState reads back what the transport writes.
func TestParseState(t *testing.T) {
	t.Parallel()

	changedAt := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)
	wire := api.ToProtoState(domain.Snapshot{
		ActiveIndex:     1,
		IsTransitioning: true,
		Total:           3,
		Generation:      7,
		ChangedAt:       changedAt,
		Slide: domain.Slide{
			ID:         2,
			Title:      "Hyper-Personalization",
			ActionStep: "Rewrite word problems.",
			Icon:       "sparkles",
		},
	}, "accepted")

	state := ParseState(wire)
	require.Equal(t, 1, state.ActiveIndex)
	require.True(t, state.IsTransitioning)
	require.Equal(t, 3, state.Total)
	require.Equal(t, uint64(7), state.Generation)
	require.Equal(t, "accepted", state.Outcome)
	require.True(t, changedAt.Equal(state.ChangedAt))
	require.Equal(t, 2, state.Slide.ID)
	require.Equal(t, "Hyper-Personalization", state.Slide.Title)
	require.Equal(t, "Rewrite word problems.", state.Slide.ActionStep)
	require.Equal(t, "sparkles", state.Slide.Icon)

	require.Equal(t, "[2/3] Hyper-Personalization (transitioning)", state.String())
}

// TestParseState_Empty verifies a nil struct yields zero values rather than a panic.
func TestParseState_Empty(t *testing.T) {
	t.Parallel()

	state := ParseState(nil)
	require.Zero(t, state.ActiveIndex)
	require.True(t, state.ChangedAt.IsZero())
	require.Empty(t, state.Slide.Title)
}

// TestRemoteState_String covers the outcome suffix and nil receiver.
func TestRemoteState_String(t *testing.T) {
	t.Parallel()

	state := &RemoteState{ActiveIndex: 2, Total: 3, Outcome: "ignored", Slide: RemoteSlide{Title: "Last"}}
	require.Equal(t, "[3/3] Last - ignored", state.String())

	var nilState *RemoteState
	require.Equal(t, "<nil state>", nilState.String())
}
