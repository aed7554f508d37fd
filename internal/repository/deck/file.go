package deck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

// Repository defines how the carousel obtains its deck.
type Repository interface {
	Load(ctx context.Context) (*carousel.Deck, error)
}

// FileRepository reads and writes a deck YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the deck file.
	path string
	// mu protects concurrent access to the deck file.
	mu sync.Mutex
}

// ErrNotFound is returned when the deck file does not exist.
var ErrNotFound = errors.New("deck not found")

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads and validates the deck file.
func (r *FileRepository) Load(_ context.Context) (*carousel.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read deck file: %w", err)
	}

	deck, err := Decode(contents)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", r.path, err)
	}

	return deck, nil
}

// Save writes the deck to disk as YAML.
func (r *FileRepository) Save(_ context.Context, deck *carousel.Deck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := Encode(deck)
	if err != nil {
		return err
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write deck file: %w", err)
	}

	return nil
}

// NewRepository returns the deck source for a deck_file setting: the
// built-in deck when path is empty, the file otherwise.
//
//nolint:ireturn // Callers only need Load.
func NewRepository(path string) Repository {
	if path == "" {
		return BuiltIn{}
	}

	return NewFileRepository(path)
}

// Open loads the deck selected by path, see NewRepository.
func Open(ctx context.Context, path string) (*carousel.Deck, error) {
	return NewRepository(path).Load(ctx)
}

// document is the YAML layout of a deck file.
type document struct {
	Title   string          `yaml:"title"`
	Tagline string          `yaml:"tagline,omitempty"`
	Author  string          `yaml:"author,omitempty"`
	Footer  string          `yaml:"footer,omitempty"`
	Slides  []slideDocument `yaml:"slides"`
}

// slideDocument is the YAML layout of one slide.
type slideDocument struct {
	ID           int    `yaml:"id"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Rationale    string `yaml:"rationale"`
	ActionStep   string `yaml:"action_step"`
	Example      string `yaml:"example"`
	RevisionPlan string `yaml:"revision_plan"`
	Color        string `yaml:"color,omitempty"`
	Icon         string `yaml:"icon,omitempty"`
}

// Decode parses and validates a deck YAML document.
func Decode(contents []byte) (*carousel.Deck, error) {
	var doc document
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	slides := make([]carousel.Slide, 0, len(doc.Slides))
	for _, s := range doc.Slides {
		slides = append(slides, carousel.Slide{
			ID:           s.ID,
			Title:        s.Title,
			Subtitle:     s.Subtitle,
			Rationale:    s.Rationale,
			ActionStep:   s.ActionStep,
			Example:      s.Example,
			RevisionPlan: s.RevisionPlan,
			Color:        s.Color,
			Icon:         s.Icon,
		})
	}

	info := carousel.Info{
		Title:   doc.Title,
		Tagline: doc.Tagline,
		Author:  doc.Author,
		Footer:  doc.Footer,
	}

	return carousel.NewDeck(info, slides)
}

// Encode renders a deck as a YAML document that Decode accepts.
func Encode(deck *carousel.Deck) ([]byte, error) {
	if deck == nil {
		return nil, errors.New("deck is not set")
	}

	info := deck.Info()
	doc := document{
		Title:   info.Title,
		Tagline: info.Tagline,
		Author:  info.Author,
		Footer:  info.Footer,
	}

	for _, s := range deck.Slides() {
		doc.Slides = append(doc.Slides, slideDocument{
			ID:           s.ID,
			Title:        s.Title,
			Subtitle:     s.Subtitle,
			Rationale:    s.Rationale,
			ActionStep:   s.ActionStep,
			Example:      s.Example,
			RevisionPlan: s.RevisionPlan,
			Color:        s.Color,
			Icon:         s.Icon,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}

	return data, nil
}
