package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

// TestDefault verifies the built-in deck holds the three commitments in order.
func TestDefault(t *testing.T) {
	t.Parallel()

	deck, err := Default()
	require.NoError(t, err)
	require.Equal(t, 3, deck.Len())

	require.Equal(t, "Process Over Product", deck.At(0).Title)
	require.Equal(t, "Hyper-Personalization", deck.At(1).Title)
	require.Equal(t, "Non-Judgmental Scaffolding", deck.At(2).Title)

	for i, s := range deck.Slides() {
		require.Equal(t, i+1, s.ID)
		require.NotEmpty(t, s.Subtitle)
		require.NotEmpty(t, s.Rationale)
		require.NotEmpty(t, s.ActionStep)
		require.NotEmpty(t, s.Example)
		require.NotEmpty(t, s.RevisionPlan)
		require.NotEmpty(t, s.Color)
		require.NotEmpty(t, s.Icon)
	}

	require.Equal(t, "Guiding Commitments", deck.Info().Title)
	require.Equal(t, "AI in Math Intervention Plan", deck.Info().Tagline)
}

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	d, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, d)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal deck.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "deck.yaml")
	repo := NewFileRepository(file)

	want, err := Default()
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Info(), got.Info())
	require.Equal(t, want.Slides(), got.Slides())

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestDecode_Invalid checks malformed YAML and deck validation errors surface.
func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("slides: [unterminated"))
	require.Error(t, err)

	_, err = Decode([]byte("title: empty\nslides: []\n"))
	require.ErrorIs(t, err, carousel.ErrEmptyDeck)

	_, err = Decode([]byte("slides:\n  - id: 1\n    title: a\n  - id: 1\n    title: b\n"))
	require.ErrorIs(t, err, carousel.ErrDuplicateSlideID)
}

// TestOpen picks the built-in deck for an empty path and the file otherwise.
func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	d, err := Open(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	path := filepath.Join(t.TempDir(), "two.yaml")
	contents := "title: Short\nslides:\n  - id: 2\n    title: second\n  - id: 1\n    title: first\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	d, err = Open(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	require.Equal(t, "first", d.At(0).Title)

	_, err = Open(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrNotFound)
}

// TestNewRepository picks the deck source from the deck_file setting.
func TestNewRepository(t *testing.T) {
	t.Parallel()

	require.IsType(t, BuiltIn{}, NewRepository(""))
	require.IsType(t, &FileRepository{}, NewRepository("deck.yaml"))

	d, err := NewRepository("").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Process Over Product", d.At(0).Title)
}
