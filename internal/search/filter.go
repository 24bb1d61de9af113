// Package search provides local fuzzy filtering over rendered titles.
// It never touches the remote catalog; grid and collection views use it
// for the `/` filter.
package search

import (
	"sort"
	"strings"

	rank "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Filter returns the indexes of titles matching query, best match
// first. An empty query matches everything in original order.
func Filter(query string, titles []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(titles))
		for i := range titles {
			all[i] = i
		}
		return all
	}

	lower := make([]string, len(titles))
	for i, t := range titles {
		lower[i] = strings.ToLower(t)
	}

	matches := fuzzy.Find(strings.ToLower(query), lower)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

// RankTitles returns the indexes of titles matching query ranked by
// Levenshtein distance, closest first. Used where ordering quality
// matters more than keystroke-subsequence matching (collection views).
func RankTitles(query string, titles []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	ranks := rank.RankFindFold(query, titles)
	sort.Sort(ranks)

	idx := make([]int, 0, len(ranks))
	for _, r := range ranks {
		idx = append(idx, r.OriginalIndex)
	}
	return idx
}
