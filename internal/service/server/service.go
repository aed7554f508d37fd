package server

import (
	"context"

	domain "github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/logger"
)

// service exposes the carousel controller to the transport and logs every
// navigation. It is unexported to keep the transport decoupled from the
// implementation.
type service struct {
	// controller owns the navigation state.
	controller *domain.Controller
	// unsubscribe detaches the settle logger.
	unsubscribe func()
}

// newService creates a service over the provided deck.
func newService(ctx context.Context, deck *domain.Deck, opts ...domain.Option) *service {
	s := &service{
		controller: domain.NewController(deck, opts...),
	}

	s.unsubscribe = s.controller.Subscribe(func(state domain.Snapshot) {
		if state.IsTransitioning {
			return
		}

		logger.DebugKV(ctx, "Slide settled", "active_index", state.ActiveIndex, "generation", state.Generation)
	})

	return s
}

// State returns the current carousel state.
func (s *service) State(ctx context.Context) domain.Snapshot {
	state := s.controller.Snapshot()

	logger.DebugKV(ctx, "Carousel state requested", "active_index", state.ActiveIndex)

	return state
}

// Navigate requests an absolute slide index.
func (s *service) Navigate(ctx context.Context, target int) domain.Outcome {
	return s.logOutcome(ctx, "navigate", s.controller.RequestNavigate(target))
}

// Next requests the slide after the active one.
func (s *service) Next(ctx context.Context) domain.Outcome {
	return s.logOutcome(ctx, "next", s.controller.Next())
}

// Previous requests the slide before the active one.
func (s *service) Previous(ctx context.Context) domain.Outcome {
	return s.logOutcome(ctx, "previous", s.controller.Previous())
}

// Slides returns the deck in display order.
func (s *service) Slides(context.Context) []domain.Slide {
	return s.controller.Deck().Slides()
}

// close stops the pending settle timer.
func (s *service) close() {
	s.unsubscribe()
	s.controller.Close()
}

// logOutcome writes one log entry per request and passes the outcome through.
func (s *service) logOutcome(ctx context.Context, action string, outcome domain.Outcome) domain.Outcome {
	if outcome.Result != domain.Accepted {
		logger.DebugKV(
			ctx,
			"Navigation request had no effect",
			"action", action,
			"target", outcome.Target,
			"result", outcome.Result.String(),
			"active_index", outcome.State.ActiveIndex,
		)

		return outcome
	}

	logger.InfoKV(
		ctx,
		"Slide changed",
		"action", action,
		"target", outcome.Target,
		"active_index", outcome.State.ActiveIndex,
		"slide_id", outcome.State.Slide.ID,
		"generation", outcome.State.Generation,
	)

	return outcome
}
