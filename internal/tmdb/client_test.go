package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemate/cinemate/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "en-US", nil)
	c.SetBaseURL(srv.URL)
	return c
}

func TestGetPopular(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 2,
			"total_pages": 50,
			"total_results": 1000,
			"results": [
				{"id": 27205, "title": "Inception", "overview": "A thief...", "poster_path": "/inc.jpg", "release_date": "2010-07-16", "vote_average": 8.4}
			]
		}`))
	})

	page, err := c.GetPopular(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 50, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(27205), page.Results[0].ID)
	assert.Equal(t, "Inception", page.Results[0].Title)
	assert.Equal(t, 2010, page.Results[0].ReleaseYear())
}

func TestSearchSendsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("query"))
		w.Write([]byte(`{"page": 1, "total_pages": 1, "total_results": 0, "results": []}`))
	})

	page, err := c.Search(context.Background(), "the matrix", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestDiscoverFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "28", q.Get("with_genres"))
		assert.Equal(t, "6.0", q.Get("vote_average.gte"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))
		assert.Empty(t, q.Get("year"))
		w.Write([]byte(`{"page": 1, "total_pages": 1, "total_results": 0, "results": []}`))
	})

	_, err := c.Discover(context.Background(), domain.DiscoverFilters{Genre: 28, MinRating: 6.0}, 1)
	require.NoError(t, err)
}

func TestGetMovieDetailsAppendsCreditsAndVideos(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205", r.URL.Path)
		assert.Equal(t, "credits,videos", r.URL.Query().Get("append_to_response"))
		w.Write([]byte(`{
			"id": 27205,
			"title": "Inception",
			"tagline": "Your mind is the scene of the crime.",
			"runtime": 148,
			"imdb_id": "tt1375666",
			"genres": [{"id": 28, "name": "Action"}],
			"credits": {"cast": [{"name": "Leonardo DiCaprio", "character": "Cobb"}]},
			"videos": {"results": [{"key": "YoHD9XEInc0", "site": "YouTube", "type": "Trailer"}]}
		}`))
	})

	detail, err := c.GetMovieDetails(context.Background(), 27205)
	require.NoError(t, err)

	assert.Equal(t, "Your mind is the scene of the crime.", detail.Tagline)
	assert.Equal(t, 148, detail.Runtime)
	require.Len(t, detail.Cast, 1)
	assert.Equal(t, "Cobb", detail.Cast[0].Character)
	assert.Equal(t, "https://www.youtube.com/watch?v=YoHD9XEInc0", detail.TrailerURL)
}

func TestGetGenres(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`))
	})

	genres, err := c.GetGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Comedy", genres[1].Name)
}

func TestUnauthorizedMapsToNotConfigured(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key"}`))
	})

	_, err := c.GetPopular(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestNotFoundMapsToMovieNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code": 34, "status_message": "Not found"}`))
	})

	_, err := c.GetMovieDetails(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestServerErrorsRetryThenSucceed(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"page": 1, "total_pages": 1, "total_results": 0, "results": []}`))
	})

	_, err := c.GetPopular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestExhaustedRetriesMapToCatalogUnavailable(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetPopular(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, int32(retryAttempts), calls.Load())
}

func TestHardErrorsDoNotRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetPopular(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCatalogUnavailable))
	assert.Equal(t, int32(1), calls.Load())
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/inc.jpg", ImageURL("/inc.jpg", ImagePoster))
	assert.Equal(t, "", ImageURL("", ImagePoster))
}
