package carousel

import (
	"errors"
	"fmt"
	"slices"
)

// Slide is one static commitment record displayed by the carousel.
type Slide struct {
	// ID is a positive, unique number that defines display order.
	ID int
	// Title is the headline of the commitment.
	Title string
	// Subtitle is the one-line summary shown under the title.
	Subtitle string
	// Rationale explains why the commitment matters.
	Rationale string
	// ActionStep describes what will be done.
	ActionStep string
	// Example shows the commitment applied in class.
	Example string
	// RevisionPlan describes how the approach will be reflected on and revised.
	RevisionPlan string
	// Color is a presentation token interpreted by the renderer.
	Color string
	// Icon is a presentation token interpreted by the renderer.
	Icon string
}

// Info holds deck-level copy shown around the slides.
type Info struct {
	// Title is the presentation headline.
	Title string
	// Tagline is printed under the headline.
	Tagline string
	// Author is the presenter name.
	Author string
	// Footer is the closing line printed next to the controls.
	Footer string
}

// Deck is an immutable ordered sequence of slides.
// It is built once at startup and shared by reference with every reader.
type Deck struct {
	// info is the deck-level copy.
	info Info
	// slides are sorted by ID and never mutated after construction.
	slides []Slide
}

var (
	// ErrEmptyDeck is returned when a deck has no slides.
	ErrEmptyDeck = errors.New("deck must contain at least one slide")
	// ErrInvalidSlideID is returned when a slide ID is not positive.
	ErrInvalidSlideID = errors.New("slide id must be positive")
	// ErrDuplicateSlideID is returned when two slides share an ID.
	ErrDuplicateSlideID = errors.New("duplicate slide id")
)

// NewDeck validates the slides and returns them as a deck ordered by ID.
func NewDeck(info Info, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	seen := make(map[int]struct{}, len(slides))

	for _, s := range slides {
		if s.ID <= 0 {
			return nil, fmt.Errorf("slide %q: %w", s.Title, ErrInvalidSlideID)
		}

		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("slide %d: %w", s.ID, ErrDuplicateSlideID)
		}

		seen[s.ID] = struct{}{}
	}

	ordered := slices.Clone(slides)
	slices.SortFunc(ordered, func(a, b Slide) int {
		return a.ID - b.ID
	})

	return &Deck{
		info:   info,
		slides: ordered,
	}, nil
}

// Info returns the deck-level copy.
func (d *Deck) Info() Info {
	return d.info
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.slides)
}

// At returns the slide at position i. It panics if i is out of range,
// exactly like indexing a slice.
func (d *Deck) At(i int) Slide {
	return d.slides[i]
}

// Slides returns a copy of the ordered slides.
func (d *Deck) Slides() []Slide {
	return slices.Clone(d.slides)
}
