package carousel

import (
	"slices"
	"sync"
	"time"
)

// DefaultSettleDuration is how long the transition flag stays raised after
// an accepted navigation.
const DefaultSettleDuration = 800 * time.Millisecond

// Result classifies what a navigation request did.
type Result int

const (
	// Accepted means the active slide changed and a settle window started.
	Accepted Result = iota
	// Unchanged means the target resolved to the slide already shown.
	Unchanged
	// Ignored means the target was rejected by the clamp policy or the
	// controller is closed.
	Ignored
)

// String returns a lower-case name for logs and the wire format.
func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Unchanged:
		return "unchanged"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the carousel state.
type Snapshot struct {
	// ActiveIndex is the zero-based index of the displayed slide.
	ActiveIndex int
	// IsTransitioning is true during the settle window.
	IsTransitioning bool
	// Slide is the displayed slide.
	Slide Slide
	// Total is the number of slides in the deck.
	Total int
	// Generation counts accepted navigations.
	Generation uint64
	// ChangedAt is the time of the last accepted navigation, zero before any.
	ChangedAt time.Time
}

// Outcome describes a handled navigation request.
type Outcome struct {
	// Result tells whether the state changed.
	Result Result
	// Target is the raw requested index.
	Target int
	// State is the carousel state right after the request was handled.
	State Snapshot
}

// Timer is a pending deferred action.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d elapses, without blocking the caller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// timeScheduler schedules deferred actions with the runtime timer.
type timeScheduler struct{}

// AfterFunc wraps time.AfterFunc.
//
//nolint:ireturn // Timer is the abstraction callers stop.
func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPolicy sets the boundary policy.
func WithPolicy(p Policy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// WithSettleDuration sets the settle window. Non-positive values keep the default.
func WithSettleDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.settleDuration = d
		}
	}
}

// WithScheduler replaces the source of deferred actions.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithClock replaces the time source used for Snapshot.ChangedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// subscription is a registered observer.
type subscription struct {
	// id identifies the subscription for removal.
	id uint64
	// fn receives every state change.
	fn func(Snapshot)
}

// Controller owns the active index and the transition flag.
// It is safe for concurrent use: requests and settle callbacks are applied
// one at a time in arrival order.
type Controller struct {
	// deck is the immutable slide list.
	deck *Deck
	// policy resolves out-of-range targets.
	policy Policy
	// settleDuration is the length of the transition window.
	settleDuration time.Duration
	// scheduler arms the settle callback.
	scheduler Scheduler
	// now stamps accepted navigations.
	now func() time.Time

	// mu guards every field below.
	mu sync.Mutex
	// activeIndex is always within [0, deck.Len()).
	activeIndex int
	// isTransitioning is raised by an accepted request and cleared on settle.
	isTransitioning bool
	// generation identifies the most recent accepted request.
	generation uint64
	// changedAt is the time of the most recent accepted request.
	changedAt time.Time
	// pending is the settle timer of the most recent accepted request.
	pending Timer
	// closed rejects requests after Close.
	closed bool
	// subscribers are notified in registration order.
	subscribers []subscription
	// nextSubscriptionID is the id handed to the next subscriber.
	nextSubscriptionID uint64
	// outbox holds state changes not yet delivered, oldest first.
	outbox []notification

	// notifyMu is held by the goroutine draining outbox. It is never
	// acquired while mu is held.
	notifyMu sync.Mutex
}

// notification is a state change waiting for delivery.
type notification struct {
	// state is delivered to every subscriber.
	state Snapshot
	// subscribers are the observers registered when the change happened.
	subscribers []subscription
}

// NewController creates a controller showing the first slide of deck.
func NewController(deck *Deck, opts ...Option) *Controller {
	c := &Controller{
		deck:           deck,
		policy:         DefaultPolicy,
		settleDuration: DefaultSettleDuration,
		scheduler:      timeScheduler{},
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Deck returns the slides the controller navigates.
func (c *Controller) Deck() *Deck {
	return c.deck
}

// Policy returns the boundary policy.
func (c *Controller) Policy() Policy {
	return c.policy
}

// SettleDuration returns the length of the transition window.
func (c *Controller) SettleDuration() time.Duration {
	return c.settleDuration
}

// RequestNavigate moves to target, resolving out-of-range values with the
// policy. Requesting the current slide is a no-op. An accepted request
// updates the index immediately, raises the transition flag and restarts
// the settle window.
func (c *Controller) RequestNavigate(target int) Outcome {
	return c.navigate(func(int) int { return target })
}

// Next requests the slide after the active one.
func (c *Controller) Next() Outcome {
	return c.navigate(func(active int) int { return active + 1 })
}

// Previous requests the slide before the active one.
func (c *Controller) Previous() Outcome {
	return c.navigate(func(active int) int { return active - 1 })
}

// JumpTo requests slide k directly.
func (c *Controller) JumpTo(k int) Outcome {
	return c.RequestNavigate(k)
}

// CurrentSlide returns the displayed slide.
func (c *Controller) CurrentSlide() Slide {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deck.At(c.activeIndex)
}

// ActiveIndex returns the zero-based index of the displayed slide.
func (c *Controller) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.activeIndex
}

// IsTransitioning reports whether the settle window is open.
func (c *Controller) IsTransitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isTransitioning
}

// Snapshot returns a consistent copy of the state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers fn to receive the state after every accepted
// navigation and after every settle. Calls are made one at a time, outside
// the controller lock, in state-change order. fn may read the state, also
// while other goroutines navigate, but must not request navigation itself,
// directly or by waiting on a goroutine that does. The returned function
// removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || fn == nil {
		return func() {}
	}

	c.nextSubscriptionID++
	id := c.nextSubscriptionID
	c.subscribers = append(c.subscribers, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscription) bool {
			return s.id == id
		})
	}
}

// Close stops the pending settle timer, lowers the transition flag and drops
// every subscriber. Later requests are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.isTransitioning = false
	c.subscribers = nil
	c.outbox = nil

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// navigate applies a request whose target is derived from the active index
// under the lock.
func (c *Controller) navigate(target func(active int) int) Outcome {
	c.mu.Lock()

	requested := target(c.activeIndex)

	if c.closed {
		outcome := Outcome{Result: Ignored, Target: requested, State: c.snapshotLocked()}
		c.mu.Unlock()

		return outcome
	}

	index, ok := c.policy.Normalize(requested, c.deck.Len())
	if !ok {
		outcome := Outcome{Result: Ignored, Target: requested, State: c.snapshotLocked()}
		c.mu.Unlock()

		return outcome
	}

	if index == c.activeIndex {
		outcome := Outcome{Result: Unchanged, Target: requested, State: c.snapshotLocked()}
		c.mu.Unlock()

		return outcome
	}

	c.activeIndex = index
	c.isTransitioning = true
	c.generation++
	c.changedAt = c.now()

	if c.pending != nil {
		c.pending.Stop()
	}

	generation := c.generation
	c.pending = c.scheduler.AfterFunc(c.settleDuration, func() {
		c.settle(generation)
	})

	outcome := Outcome{Result: Accepted, Target: requested, State: c.snapshotLocked()}
	c.publishAndUnlock(outcome.State)

	return outcome
}

// settle closes the transition window opened by the request with the given
// generation. Windows superseded by a newer request are left alone.
func (c *Controller) settle(generation uint64) {
	c.mu.Lock()

	if c.closed || generation != c.generation || !c.isTransitioning {
		c.mu.Unlock()

		return
	}

	c.isTransitioning = false
	c.pending = nil

	c.publishAndUnlock(c.snapshotLocked())
}

// publishAndUnlock queues state for the subscribers, releases mu and
// delivers every queued change. Callers must hold mu.
//
// mu is released before notifyMu is taken, so a subscriber reading the state
// never waits on a navigation that waits on the subscriber. Whichever
// goroutine holds notifyMu drains the queue, including changes queued by
// others, so delivery order is the queue order. When this call returns, state
// has been delivered.
func (c *Controller) publishAndUnlock(state Snapshot) {
	if len(c.subscribers) > 0 {
		c.outbox = append(c.outbox, notification{
			state:       state,
			subscribers: slices.Clone(c.subscribers),
		})
	}

	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	for {
		next, ok := c.popNotification()
		if !ok {
			return
		}

		for _, s := range next.subscribers {
			s.fn(next.state)
		}
	}
}

// popNotification removes the oldest queued change.
func (c *Controller) popNotification() (notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.outbox) == 0 {
		return notification{}, false
	}

	next := c.outbox[0]
	c.outbox[0] = notification{}
	c.outbox = c.outbox[1:]

	return next, true
}

// snapshotLocked builds a Snapshot. Callers must hold mu.
func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		ActiveIndex:     c.activeIndex,
		IsTransitioning: c.isTransitioning,
		Slide:           c.deck.At(c.activeIndex),
		Total:           c.deck.Len(),
		Generation:      c.generation,
		ChangedAt:       c.changedAt,
	}
}
