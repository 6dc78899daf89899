package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mushikui/internal/domain"
)

func samplePuzzle(id string, diff domain.Difficulty) *domain.Puzzle {
	return &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: diff,
		Grid: domain.Grid{
			Multiplicand: domain.Row{domain.Fixed(2), domain.Fixed(7)},
			Multiplier:   domain.Row{domain.Wildcard},
			Partials:     []domain.Row{{domain.Wildcard, domain.Wildcard, domain.Fixed(9)}},
			Product:      domain.Row{domain.Wildcard, domain.Wildcard, domain.Fixed(9)},
		},
		CreatedAt: 1,
		Name:      "trailing nine",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("p1", domain.Hard)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.True(t, got.Grid.Multiplier[0].IsWildcard())
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle("", domain.Easy)
	assert.Error(t, s.Save(context.Background(), p))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLegacyFlatLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	p := samplePuzzle("legacy", domain.Medium)
	require.NoError(t, s.Save(ctx, p))
	// move the file to the old flat layout
	require.NoError(t, os.Rename(
		filepath.Join(dir, "medium", "legacy.json"),
		filepath.Join(dir, "legacy.json"),
	))

	got, err := s.Load(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestListAcrossBuckets(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, samplePuzzle("a", domain.Easy)))
	require.NoError(t, s.Save(ctx, samplePuzzle("b", domain.Expert)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	for _, m := range metas {
		assert.Equal(t, "trailing nine", m.Name)
		assert.EqualValues(t, 1, m.CreatedAt)
	}
}
