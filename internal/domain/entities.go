package domain

import (
	"fmt"
	"strconv"
)

// CollectionName identifies one of the user's local collections.
type CollectionName string

const (
	CollectionFavorites CollectionName = "favorites"
	CollectionWatchlist CollectionName = "watchlist"
)

// Valid reports whether the name is a known collection.
func (n CollectionName) Valid() bool {
	return n == CollectionFavorites || n == CollectionWatchlist
}

// String returns the collection name as stored.
func (n CollectionName) String() string { return string(n) }

// MovieRef is the snapshot of a catalog item kept in a local collection.
// It is immutable once stored; refreshing catalog data never rewrites it.
type MovieRef struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// ReleaseYear returns the four-digit release year, or 0 if unknown.
func (r MovieRef) ReleaseYear() int {
	if len(r.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(r.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// FormattedRating returns the vote average as "7.8", or "N/A" when absent.
func (r MovieRef) FormattedRating() string {
	if r.VoteAverage <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", r.VoteAverage)
}

// MovieSummary is a catalog listing entry (popular, search, discover results).
type MovieSummary struct {
	ID          int64
	Title       string
	Overview    string
	PosterPath  string
	ReleaseDate string
	VoteAverage float64
	Popularity  float64
	GenreIDs    []int64
}

// Ref returns the collection snapshot for this summary.
func (m MovieSummary) Ref() MovieRef {
	return MovieRef{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}

// ReleaseYear returns the four-digit release year, or 0 if unknown.
func (m MovieSummary) ReleaseYear() int { return m.Ref().ReleaseYear() }

// FormattedRating returns the vote average as "7.8", or "N/A" when absent.
func (m MovieSummary) FormattedRating() string { return m.Ref().FormattedRating() }

// Genre is a catalog genre entry.
type Genre struct {
	ID   int64
	Name string
}

// CastMember is a single credited cast entry.
type CastMember struct {
	Name        string
	Character   string
	ProfilePath string
}

// CollectionInfo describes the franchise collection a movie belongs to.
type CollectionInfo struct {
	ID         int64
	Name       string
	PosterPath string
}

// MovieDetail is the full catalog record shown on the detail view.
type MovieDetail struct {
	MovieSummary

	Tagline    string
	Runtime    int // minutes
	Budget     int64
	Revenue    int64
	IMDbID     string
	Genres     []Genre
	Cast       []CastMember
	BelongsTo  *CollectionInfo
	TrailerURL string
}

// FormattedRuntime returns the runtime as "2h 28m", or "" when unknown.
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Ratings holds critic scores from the ratings provider.
// Empty strings mean the provider had no score for that source.
type Ratings struct {
	IMDb           string
	RottenTomatoes string
	Metascore      string
}

// HasAny reports whether at least one score is present.
func (r Ratings) HasAny() bool {
	return r.IMDb != "" || r.RottenTomatoes != "" || r.Metascore != ""
}

// DiscoverFilters narrows a discover query. Zero values mean "any".
type DiscoverFilters struct {
	Genre     int64
	Year      int
	MinRating float64
	SortBy    string // e.g. "popularity.desc", defaulted by the client
}

// MoviePage is one page of catalog results.
type MoviePage struct {
	Page         int
	TotalPages   int
	TotalResults int
	Results      []MovieSummary
}
