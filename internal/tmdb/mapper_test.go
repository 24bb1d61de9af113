package tmdb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailerURLPrefersYouTubeTrailer(t *testing.T) {
	videos := &videosDTO{Results: []videoDTO{
		{Key: "clip1", Site: "YouTube", Type: "Clip"},
		{Key: "vimeo1", Site: "Vimeo", Type: "Trailer"},
		{Key: "real", Site: "YouTube", Type: "Trailer"},
	}}

	assert.Equal(t, "https://www.youtube.com/watch?v=real", trailerURL(videos))
}

func TestTrailerURLFallsBackToFirstVideo(t *testing.T) {
	videos := &videosDTO{Results: []videoDTO{
		{Key: "teaser", Site: "YouTube", Type: "Teaser"},
	}}

	assert.Equal(t, "https://www.youtube.com/watch?v=teaser", trailerURL(videos))
	assert.Equal(t, "", trailerURL(nil))
	assert.Equal(t, "", trailerURL(&videosDTO{}))
}

func TestMapDetailCapsCast(t *testing.T) {
	dto := movieDetailDTO{Credits: &creditsDTO{}}
	for i := 0; i < maxCastEntries+5; i++ {
		dto.Credits.Cast = append(dto.Credits.Cast, castDTO{Name: fmt.Sprintf("Actor %d", i)})
	}

	detail := mapDetail(dto)
	assert.Len(t, detail.Cast, maxCastEntries)
}

func TestMapDetailBelongsToCollection(t *testing.T) {
	dto := movieDetailDTO{
		BelongsToCollection: &collectionDTO{ID: 86311, Name: "The Avengers Collection"},
	}

	detail := mapDetail(dto)
	require.NotNil(t, detail.BelongsTo)
	assert.Equal(t, "The Avengers Collection", detail.BelongsTo.Name)

	assert.Nil(t, mapDetail(movieDetailDTO{}).BelongsTo)
}
