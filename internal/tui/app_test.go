package tui

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/config"
	"github.com/cinemate/cinemate/internal/domain"
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

type stubCatalog struct{}

func (stubCatalog) GetPopular(context.Context, int) (*domain.MoviePage, error) {
	return &domain.MoviePage{}, nil
}

func (stubCatalog) Search(context.Context, string, int) (*domain.MoviePage, error) {
	return &domain.MoviePage{}, nil
}

func (stubCatalog) Discover(context.Context, domain.DiscoverFilters, int) (*domain.MoviePage, error) {
	return &domain.MoviePage{}, nil
}

func (stubCatalog) GetMovieDetails(context.Context, int64) (*domain.MovieDetail, error) {
	return &domain.MovieDetail{}, nil
}

func (stubCatalog) GetGenres(context.Context) ([]domain.Genre, error) {
	return nil, nil
}

type stubRatings struct{}

func (stubRatings) GetRatings(context.Context, string, int) (*domain.Ratings, error) {
	return nil, nil
}

func newTestModel(t *testing.T, ui config.UIConfig) Model {
	t.Helper()
	svc := collection.NewService(&memStore{data: make(map[string][]byte)}, nil)
	return NewModel(stubCatalog{}, stubRatings{}, svc, ui, nil)
}

func TestNewModelSeedsSortFromConfig(t *testing.T) {
	m := newTestModel(t, config.UIConfig{DefaultSort: "newest"})
	assert.True(t, m.SortNewest)

	m = newTestModel(t, config.UIConfig{DefaultSort: "insertion"})
	assert.False(t, m.SortNewest)

	// Absent or unknown values fall back to the newest-first default.
	m = newTestModel(t, config.UIConfig{})
	assert.True(t, m.SortNewest)
}

func TestShowCollectionHonorsSortSetting(t *testing.T) {
	m := newTestModel(t, config.UIConfig{DefaultSort: "insertion"})
	m.Collections.Add(domain.CollectionFavorites, domain.MovieRef{ID: 1, Title: "Old", ReleaseDate: "1999-01-01"})
	m.Collections.Add(domain.CollectionFavorites, domain.MovieRef{ID: 2, Title: "New", ReleaseDate: "2024-01-01"})

	m.showCollection(StateFavorites)
	assert.Equal(t, "Old", m.FavGrid.Selected().Ref.Title)

	m.SortNewest = true
	m.showCollection(StateFavorites)
	assert.Equal(t, "New", m.FavGrid.Selected().Ref.Title)
}
