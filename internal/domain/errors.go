package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrCatalogUnavailable indicates the catalog provider is unreachable
	ErrCatalogUnavailable = errors.New("movie catalog is unreachable")

	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrNotConfigured indicates a missing or rejected API key
	ErrNotConfigured = errors.New("catalog API key is missing or invalid")

	// ErrRatingsUnavailable indicates the ratings provider is unreachable
	ErrRatingsUnavailable = errors.New("ratings provider is unreachable")
)
