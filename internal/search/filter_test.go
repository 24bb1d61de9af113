package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titles = []string{
	"Inception",
	"Interstellar",
	"The Matrix",
	"The Matrix Reloaded",
	"Blade Runner 2049",
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	idx := Filter("", titles)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)

	idx = Filter("   ", titles)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	idx := Filter("MATRIX", titles)
	require.Len(t, idx, 2)
	assert.Contains(t, idx, 2)
	assert.Contains(t, idx, 3)
}

func TestFilterMatchesSubsequences(t *testing.T) {
	idx := Filter("brn", titles)
	require.NotEmpty(t, idx)
	assert.Equal(t, 4, idx[0])
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter("zzzz", titles))
}

func TestRankTitlesOrdersByDistance(t *testing.T) {
	idx := RankTitles("the matrix", titles)
	require.NotEmpty(t, idx)
	assert.Equal(t, 2, idx[0])
}

func TestRankTitlesEmptyQuery(t *testing.T) {
	assert.Nil(t, RankTitles("", titles))
}
