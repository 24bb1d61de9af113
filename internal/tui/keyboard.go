package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinemate/cinemate/internal/domain"
	"github.com/cinemate/cinemate/internal/tui/components"
)

// handleKeyMsg routes key presses by application state
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input swallows everything except esc/enter
	if m.State == StateSearchInput {
		return m.handleSearchInputKey(msg)
	}

	// An active grid filter swallows everything except esc/enter
	if grid := m.activeGrid(); grid != nil && grid.FilterActive() {
		switch {
		case key.Matches(msg, m.Keys.Escape):
			grid.ClearFilter()
			return m, nil
		case key.Matches(msg, m.Keys.Enter):
			grid.StopFilter()
			return m, nil
		default:
			return m, grid.UpdateFilter(msg)
		}
	}

	if m.State == StateHelp {
		m.State = m.prevState
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		if m.State != StateHelp {
			m.prevState = m.State
		}
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.Keys.Browse):
		m.State = StateBrowse
		m.BadgeBar.SetActive(components.TabBrowse)
		return m, nil

	case key.Matches(msg, m.Keys.Favorites):
		m.showCollection(StateFavorites)
		return m, nil

	case key.Matches(msg, m.Keys.Watchlist):
		m.showCollection(StateWatchlist)
		return m, nil
	}

	if m.State == StateDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleGridKey handles keys on the browse and collection views
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := m.activeGrid()
	if grid == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		grid.MoveUp()

	case key.Matches(msg, m.Keys.Down):
		grid.MoveDown()

	case key.Matches(msg, m.Keys.Home):
		grid.Home()

	case key.Matches(msg, m.Keys.End):
		grid.End()

	case key.Matches(msg, m.Keys.Enter):
		if card := grid.Selected(); card != nil {
			m.Loading = true
			return m, tea.Batch(
				LoadDetailCmd(m.Catalog, card.Ref.ID),
				TickCmd(100*time.Millisecond),
			)
		}

	case key.Matches(msg, m.Keys.ToggleFavorite):
		if result, ok := grid.ToggleSelected(domain.CollectionFavorites); ok {
			return m, m.statusForToggle(result, domain.CollectionFavorites)
		}

	case key.Matches(msg, m.Keys.ToggleWatchlist):
		if result, ok := grid.ToggleSelected(domain.CollectionWatchlist); ok {
			return m, m.statusForToggle(result, domain.CollectionWatchlist)
		}

	case key.Matches(msg, m.Keys.Filter):
		grid.StartFilter()

	case key.Matches(msg, m.Keys.Sort):
		if m.State == StateFavorites || m.State == StateWatchlist {
			m.SortNewest = !m.SortNewest
			m.showCollection(m.State)
		}

	case key.Matches(msg, m.Keys.Search):
		if m.State == StateBrowse {
			m.prevState = m.State
			m.State = StateSearchInput
			m.SearchInput.SetValue("")
			m.SearchInput.Focus()
		}

	case key.Matches(msg, m.Keys.Random):
		if m.State == StateBrowse {
			m.Loading = true
			return m, tea.Batch(
				RandomPickCmd(m.Catalog, m.randomFilters()),
				TickCmd(100*time.Millisecond),
			)
		}

	case key.Matches(msg, m.Keys.Genre):
		if m.State == StateBrowse && len(m.Genres) > 0 {
			return m.cycleGenre()
		}

	case key.Matches(msg, m.Keys.NextPage):
		if m.State == StateBrowse && m.Page < m.TotalPages {
			return m.loadBrowsePage(m.Page + 1)
		}

	case key.Matches(msg, m.Keys.PrevPage):
		if m.State == StateBrowse && m.Page > 1 {
			return m.loadBrowsePage(m.Page - 1)
		}
	}

	return m, nil
}

// handleDetailKey handles keys on the detail view
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Escape):
		m.State = m.prevState
		// Collection views re-render from storage so a toggle made
		// on the detail page is reflected in the grid and ordering.
		if m.State == StateFavorites || m.State == StateWatchlist {
			m.showCollection(m.State)
		}
		return m, nil

	case key.Matches(msg, m.Keys.ToggleFavorite):
		if result, ok := m.Detail.Toggle(domain.CollectionFavorites); ok {
			return m, m.statusForToggle(result, domain.CollectionFavorites)
		}

	case key.Matches(msg, m.Keys.ToggleWatchlist):
		if result, ok := m.Detail.Toggle(domain.CollectionWatchlist); ok {
			return m, m.statusForToggle(result, domain.CollectionWatchlist)
		}
	}

	return m, nil
}

// handleSearchInputKey handles keys while the search prompt is open
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape):
		m.State = m.prevState
		m.SearchInput.Blur()
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		query := strings.TrimSpace(m.SearchInput.Value())
		if query == "" {
			m.Footer.SetStatus("Please enter a movie title", true)
			return m, ClearStatusCmd(3 * time.Second)
		}
		m.State = StateBrowse
		m.SearchInput.Blur()
		m.Loading = true
		return m, tea.Batch(
			SearchCmd(m.Catalog, query, 1),
			TickCmd(100*time.Millisecond),
		)
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	return m, cmd
}

// loadBrowsePage fetches another page of the current browse context
func (m Model) loadBrowsePage(page int) (tea.Model, tea.Cmd) {
	m.Loading = true
	var cmd tea.Cmd
	if m.GenreIdx >= 0 {
		genre := m.Genres[m.GenreIdx]
		cmd = DiscoverCmd(m.Catalog, domain.DiscoverFilters{Genre: genre.ID}, page, "Genre: "+genre.Name)
	} else {
		cmd = LoadPopularCmd(m.Catalog, page)
	}
	return m, tea.Batch(cmd, TickCmd(100*time.Millisecond))
}

// cycleGenre advances the browse genre filter: all -> g1 -> g2 ... -> all
func (m Model) cycleGenre() (tea.Model, tea.Cmd) {
	m.GenreIdx++
	if m.GenreIdx >= len(m.Genres) {
		m.GenreIdx = -1
		m.Loading = true
		return m, tea.Batch(LoadPopularCmd(m.Catalog, 1), TickCmd(100*time.Millisecond))
	}

	genre := m.Genres[m.GenreIdx]
	m.Loading = true
	return m, tea.Batch(
		DiscoverCmd(m.Catalog, domain.DiscoverFilters{Genre: genre.ID}, 1, "Genre: "+genre.Name),
		TickCmd(100*time.Millisecond),
	)
}

// randomFilters builds the discover filters for a random pick
func (m Model) randomFilters() domain.DiscoverFilters {
	filters := domain.DiscoverFilters{MinRating: 6.0}
	if m.GenreIdx >= 0 {
		filters.Genre = m.Genres[m.GenreIdx].ID
	}
	return filters
}
