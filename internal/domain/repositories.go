package domain

import "context"

// CatalogRepository provides access to the remote movie catalog.
type CatalogRepository interface {
	// GetPopular returns one page of the popular movies chart.
	GetPopular(ctx context.Context, page int) (*MoviePage, error)

	// Search returns one page of title search results.
	Search(ctx context.Context, query string, page int) (*MoviePage, error)

	// Discover returns one page of movies matching the filters.
	Discover(ctx context.Context, filters DiscoverFilters, page int) (*MoviePage, error)

	// GetMovieDetails returns the full record for a single movie,
	// including credits and trailer information.
	GetMovieDetails(ctx context.Context, id int64) (*MovieDetail, error)

	// GetGenres returns the catalog's genre list.
	GetGenres(ctx context.Context) ([]Genre, error)
}

// RatingsRepository provides critic scores for a movie by title.
// A (nil, nil) return means the provider has no record for the title;
// only transport and parse failures surface as errors.
type RatingsRepository interface {
	GetRatings(ctx context.Context, title string, year int) (*Ratings, error)
}
