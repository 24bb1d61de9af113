package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemate/cinemate/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", nil)
	c.SetBaseURL(srv.URL)
	return c
}

func TestGetRatings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "Inception", r.URL.Query().Get("t"))
		assert.Equal(t, "2010", r.URL.Query().Get("y"))

		w.Write([]byte(`{
			"Response": "True",
			"imdbRating": "8.8",
			"Metascore": "74",
			"Ratings": [
				{"Source": "Internet Movie Database", "Value": "8.8/10"},
				{"Source": "Rotten Tomatoes", "Value": "87%"}
			]
		}`))
	})

	ratings, err := c.GetRatings(context.Background(), "Inception", 2010)
	require.NoError(t, err)
	require.NotNil(t, ratings)

	assert.Equal(t, "8.8", ratings.IMDb)
	assert.Equal(t, "87%", ratings.RottenTomatoes)
	assert.Equal(t, "74", ratings.Metascore)
	assert.True(t, ratings.HasAny())
}

func TestUnknownTitleIsNotAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	})

	ratings, err := c.GetRatings(context.Background(), "No Such Movie", 0)
	assert.NoError(t, err)
	assert.Nil(t, ratings)
}

func TestNAScoresAreBlanked(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "True", "imdbRating": "N/A", "Metascore": "N/A", "Ratings": []}`))
	})

	ratings, err := c.GetRatings(context.Background(), "Obscure", 0)
	require.NoError(t, err)
	require.NotNil(t, ratings)

	assert.Empty(t, ratings.IMDb)
	assert.Empty(t, ratings.Metascore)
	assert.Empty(t, ratings.RottenTomatoes)
	assert.False(t, ratings.HasAny())
}

func TestMissingKeyDisablesLookups(t *testing.T) {
	c := NewClient("", nil)

	ratings, err := c.GetRatings(context.Background(), "Inception", 2010)
	assert.NoError(t, err)
	assert.Nil(t, ratings)
}

func TestServerErrorMapsToRatingsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetRatings(context.Background(), "Inception", 2010)
	assert.ErrorIs(t, err, domain.ErrRatingsUnavailable)
}
