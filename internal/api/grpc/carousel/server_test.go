package carousel

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	pb "github.com/stevenraymond8592-create/AI-Commitment/internal/pb/v1"
)

// fakeService implements the carousel Service interface over a real controller.
type fakeService struct {
	// controller holds the navigation state.
	controller *domain.Controller
	// targets records every absolute target passed to Navigate.
	targets []int
}

// newFakeService builds a fake over a three-slide deck.
func newFakeService(t *testing.T) *fakeService {
	t.Helper()

	deck, err := domain.NewDeck(domain.Info{Title: "Test"}, []domain.Slide{
		{ID: 1, Title: "one", Icon: "sparkles"},
		{ID: 2, Title: "two"},
		{ID: 3, Title: "three"},
	})
	require.NoError(t, err)

	controller := domain.NewController(deck, domain.WithSettleDuration(time.Hour))
	t.Cleanup(controller.Close)

	return &fakeService{controller: controller}
}

// State returns the controller snapshot.
func (f *fakeService) State(context.Context) domain.Snapshot { return f.controller.Snapshot() }

// Navigate records the target and forwards it.
func (f *fakeService) Navigate(_ context.Context, target int) domain.Outcome {
	f.targets = append(f.targets, target)

	return f.controller.RequestNavigate(target)
}

// Next forwards to the controller.
func (f *fakeService) Next(context.Context) domain.Outcome { return f.controller.Next() }

// Previous forwards to the controller.
func (f *fakeService) Previous(context.Context) domain.Outcome { return f.controller.Previous() }

// Slides returns the deck slides.
func (f *fakeService) Slides(context.Context) []domain.Slide { return f.controller.Deck().Slides() }

// TestServer_Navigate_Validation ensures a nil request returns InvalidArgument.
func TestServer_Navigate_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService(t))

	_, err := s.Navigate(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Roundtrip exercises navigation RPCs end-to-end on the server implementation.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewServer(newFakeService(t))

	state, err := s.GetState(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.InDelta(t, 0, state.GetFields()[pb.FieldActiveIndex].GetNumberValue(), 0)
	require.False(t, state.GetFields()[pb.FieldIsTransitioning].GetBoolValue())
	require.InDelta(t, 3, state.GetFields()[pb.FieldTotal].GetNumberValue(), 0)
	require.NotContains(t, state.GetFields(), pb.FieldOutcome)
	require.NotContains(t, state.GetFields(), pb.FieldChangedAt)

	// Wraps to the last slide.
	state, err = s.Previous(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.InDelta(t, 2, state.GetFields()[pb.FieldActiveIndex].GetNumberValue(), 0)
	require.True(t, state.GetFields()[pb.FieldIsTransitioning].GetBoolValue())
	require.Equal(t, "accepted", state.GetFields()[pb.FieldOutcome].GetStringValue())
	require.Contains(t, state.GetFields(), pb.FieldChangedAt)

	slide := state.GetFields()[pb.FieldSlide].GetStructValue()
	require.Equal(t, "three", slide.GetFields()[pb.SlideFieldTitle].GetStringValue())

	state, err = s.Next(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.InDelta(t, 0, state.GetFields()[pb.FieldActiveIndex].GetNumberValue(), 0)

	state, err = s.Navigate(ctx, wrapperspb.Int64(0))
	require.NoError(t, err)
	require.Equal(t, "unchanged", state.GetFields()[pb.FieldOutcome].GetStringValue())
}

// TestServer_Navigate_LargeTargets ensures extreme wire values reach the policy intact.
func TestServer_Navigate_LargeTargets(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t)
	s := NewServer(svc)

	state, err := s.Navigate(context.Background(), wrapperspb.Int64(math.MinInt64))
	require.NoError(t, err)
	require.InDelta(t, 2, state.GetFields()[pb.FieldActiveIndex].GetNumberValue(), 0)

	state, err = s.Navigate(context.Background(), wrapperspb.Int64(math.MaxInt64))
	require.NoError(t, err)
	require.InDelta(t, 0, state.GetFields()[pb.FieldActiveIndex].GetNumberValue(), 0)

	require.Len(t, svc.targets, 2)
}

// TestServer_ListSlides verifies slides come back in display order with every field.
func TestServer_ListSlides(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService(t))

	list, err := s.ListSlides(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 3)

	first := list.GetValues()[0].GetStructValue()
	require.InDelta(t, 1, first.GetFields()[pb.SlideFieldID].GetNumberValue(), 0)
	require.Equal(t, "one", first.GetFields()[pb.SlideFieldTitle].GetStringValue())
	require.Equal(t, "sparkles", first.GetFields()[pb.SlideFieldIcon].GetStringValue())
}
