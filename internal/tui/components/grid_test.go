package components

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/domain"
	uisync "github.com/cinemate/cinemate/internal/tui/sync"
)

type memStore struct {
	data map[string][]byte
}

func (m *memStore) Read(key string, dest interface{}) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memStore) Write(key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	m.data[key] = raw
	return true
}

func (m *memStore) Close() error { return nil }

// fixture wires a favorites-scoped grid the way the app model does:
// the grid registers as a scoped view, the badge records counts.
func fixture(t *testing.T) (*Grid, *collection.Service, *BadgeBar) {
	t.Helper()

	svc := collection.NewService(&memStore{data: make(map[string][]byte)}, nil)
	grid := NewGrid(domain.CollectionFavorites, "empty")
	badge := NewBadgeBar()
	b := uisync.NewBroadcaster(svc, []uisync.CountSurface{badge}, []uisync.ScopedView{grid}, nil)
	grid.SetBindings(uisync.NewBindingSet(svc, b))
	return grid, svc, badge
}

func refs(titles ...string) []domain.MovieRef {
	out := make([]domain.MovieRef, len(titles))
	for i, title := range titles {
		out[i] = domain.MovieRef{ID: int64(i + 1), Title: title, ReleaseDate: "2020-01-01"}
	}
	return out
}

func TestGridSelection(t *testing.T) {
	grid, _, _ := fixture(t)
	grid.SetRefs(refs("A", "B", "C"))

	require.Equal(t, "A", grid.Selected().Ref.Title)

	grid.MoveDown()
	assert.Equal(t, "B", grid.Selected().Ref.Title)

	grid.End()
	assert.Equal(t, "C", grid.Selected().Ref.Title)

	grid.MoveDown()
	assert.Equal(t, "C", grid.Selected().Ref.Title)

	grid.Home()
	assert.Equal(t, "A", grid.Selected().Ref.Title)

	grid.MoveUp()
	assert.Equal(t, "A", grid.Selected().Ref.Title)
}

func TestToggleSelectedPropagates(t *testing.T) {
	grid, svc, badge := fixture(t)
	movies := refs("A", "B")
	for _, ref := range movies {
		svc.Add(domain.CollectionFavorites, ref)
	}
	grid.SetRefs(movies)

	// Toggling off the selected favorite removes it from storage,
	// drops its card, and refreshes the badge counts.
	result, ok := grid.ToggleSelected(domain.CollectionFavorites)
	require.True(t, ok)
	assert.False(t, result.Added)

	assert.False(t, svc.Contains(domain.CollectionFavorites, 1))
	assert.Equal(t, 1, grid.Len())

	fav, _ := badge.Counts()
	assert.Equal(t, 1, fav)
	assert.False(t, grid.Empty())
}

func TestScopedRemovalDrainsToEmptyState(t *testing.T) {
	grid, svc, _ := fixture(t)
	movies := refs("A")
	svc.Add(domain.CollectionFavorites, movies[0])
	grid.SetRefs(movies)

	_, ok := grid.ToggleSelected(domain.CollectionFavorites)
	require.True(t, ok)

	assert.True(t, grid.Empty())
	assert.Contains(t, grid.View(), "empty")
}

func TestRemoveCardClampsCursor(t *testing.T) {
	grid, _, _ := fixture(t)
	grid.SetRefs(refs("A", "B", "C"))
	grid.End()

	grid.RemoveCard(3)

	require.Equal(t, 2, grid.Len())
	assert.Equal(t, "B", grid.Selected().Ref.Title)
}

func TestToggleSelectedOnEmptyGrid(t *testing.T) {
	grid, _, _ := fixture(t)
	grid.SetRefs(nil)

	_, ok := grid.ToggleSelected(domain.CollectionFavorites)
	assert.False(t, ok)
	assert.Nil(t, grid.Selected())
}

func TestScopedFilterRanksByDistance(t *testing.T) {
	grid, _, _ := fixture(t)
	grid.SetRefs([]domain.MovieRef{
		{ID: 1, Title: "The Matrix Reloaded"},
		{ID: 2, Title: "Inception"},
		{ID: 3, Title: "The Matrix"},
	})

	grid.StartFilter()
	grid.UpdateFilter(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("the matrix")})

	// The closest title wins the top slot even though it was rendered
	// after the longer match.
	require.Equal(t, 2, grid.Len())
	assert.Equal(t, "The Matrix", grid.Selected().Ref.Title)

	grid.ClearFilter()
	assert.Equal(t, 3, grid.Len())
}

func TestSetRefsRebindsFromStorage(t *testing.T) {
	grid, svc, _ := fixture(t)
	movies := refs("A", "B")
	svc.Add(domain.CollectionWatchlist, movies[1])

	grid.SetRefs(movies)

	// Re-rendering rebuilds the bindings; the marker for B reflects
	// the stored watchlist membership without any toggle in between.
	view := grid.View()
	assert.True(t, strings.Contains(view, "A (2020)"))
	assert.True(t, strings.Contains(view, "B (2020)"))
}
