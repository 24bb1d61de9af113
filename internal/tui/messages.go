package tui

import (
	"github.com/cinemate/cinemate/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg signals that a page of catalog results is ready
type PageLoadedMsg struct {
	Page  *domain.MoviePage
	Title string // section title ("Featured Movies", `Search: "dune"`, ...)
}

// GenresLoadedMsg signals that the genre list is ready
type GenresLoadedMsg struct {
	Genres []domain.Genre
}

// DetailLoadedMsg signals that a movie detail record is ready
type DetailLoadedMsg struct {
	Movie *domain.MovieDetail
}

// RatingsLoadedMsg signals that critic ratings are ready.
// Ratings is nil when the provider has no record for the title.
type RatingsLoadedMsg struct {
	MovieID int64
	Ratings *domain.Ratings
}

// RandomPickMsg signals that a random discover pick is ready
type RandomPickMsg struct {
	Movie domain.MovieSummary
}

// StatusMsg sets a temporary status message in the footer
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the footer status message
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}
