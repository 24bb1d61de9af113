package tui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinemate/cinemate/internal/domain"
)

// Command factories for async catalog operations

const requestTimeout = 30 * time.Second

// LoadPopularCmd loads one page of the popular chart
func LoadPopularCmd(catalog domain.CatalogRepository, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := catalog.GetPopular(ctx, page)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading popular movies"}
		}
		return PageLoadedMsg{Page: result, Title: "Featured Movies"}
	}
}

// SearchCmd runs a title search
func SearchCmd(catalog domain.CatalogRepository, query string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := catalog.Search(ctx, query, page)
		if err != nil {
			return ErrMsg{Err: err, Context: "searching movies"}
		}
		return PageLoadedMsg{Page: result, Title: fmt.Sprintf("Search: %q", query)}
	}
}

// DiscoverCmd loads one page of filtered discover results
func DiscoverCmd(catalog domain.CatalogRepository, filters domain.DiscoverFilters, page int, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := catalog.Discover(ctx, filters, page)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading movies"}
		}
		return PageLoadedMsg{Page: result, Title: title}
	}
}

// LoadGenresCmd loads the genre list
func LoadGenresCmd(catalog domain.CatalogRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		genres, err := catalog.GetGenres(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading genres"}
		}
		return GenresLoadedMsg{Genres: genres}
	}
}

// LoadDetailCmd loads the full record for a movie
func LoadDetailCmd(catalog domain.CatalogRepository, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		movie, err := catalog.GetMovieDetails(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading movie details"}
		}
		return DetailLoadedMsg{Movie: movie}
	}
}

// LoadRatingsCmd looks up critic ratings for a movie title.
// Missing ratings are not an error; the detail view just omits them.
func LoadRatingsCmd(ratings domain.RatingsRepository, movieID int64, title string, year int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := ratings.GetRatings(ctx, title, year)
		if err != nil {
			return RatingsLoadedMsg{MovieID: movieID, Ratings: nil}
		}
		return RatingsLoadedMsg{MovieID: movieID, Ratings: result}
	}
}

// RandomPickCmd picks a random movie from a random discover page
func RandomPickCmd(catalog domain.CatalogRepository, filters domain.DiscoverFilters) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page := rand.Intn(10) + 1
		result, err := catalog.Discover(ctx, filters, page)
		if err != nil {
			return ErrMsg{Err: err, Context: "picking a random movie"}
		}
		if len(result.Results) == 0 {
			return StatusMsg{Message: "No movies matched the random pick filters", IsError: true}
		}
		return RandomPickMsg{Movie: result.Results[rand.Intn(len(result.Results))]}
	}
}

// TickCmd schedules the next spinner frame
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the footer status after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
