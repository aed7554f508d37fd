package deck

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

//go:embed default_deck.yaml
var defaultDeckYAML []byte

// Default returns the built-in deck of three guiding commitments.
func Default() (*carousel.Deck, error) {
	deck, err := Decode(defaultDeckYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in deck: %w", err)
	}

	return deck, nil
}

// BuiltIn serves the embedded deck.
type BuiltIn struct{}

// Load returns the built-in deck.
func (BuiltIn) Load(_ context.Context) (*carousel.Deck, error) {
	return Default()
}
