package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinemate/cinemate/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var content string
	switch m.State {
	case StateBrowse:
		content = m.renderBrowse()
	case StateFavorites:
		content = m.FavGrid.View()
	case StateWatchlist:
		content = m.WatchGrid.View()
	case StateDetail:
		content = m.Detail.View()
	case StateSearchInput:
		content = m.renderSearchInput()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.BadgeBar.View(),
		content,
		m.Footer.View(m.hints()),
	)
}

// renderBrowse renders the catalog view: section title, grid, paging line
func (m Model) renderBrowse() string {
	title := m.SectionTitle
	if title == "" {
		title = "Popular Movies"
	}
	if m.Loading {
		frame := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
		title = frame + " " + title
	}

	paging := ""
	if m.TotalPages > 1 {
		paging = styles.DimStyle.Render(fmt.Sprintf("Page %d of %d  (n next, p prev)", m.Page, m.TotalPages))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render(title),
		m.BrowseGrid.View(),
		paging,
	)
}

// renderSearchInput renders the search prompt over an otherwise blank view
func (m Model) renderSearchInput() string {
	prompt := m.SearchInput.View()
	hint := styles.DimStyle.Render("enter to search, esc to cancel")

	body := lipgloss.JoinVertical(lipgloss.Left, prompt, "", hint)
	height := m.Height - chromeHeight
	if height < 3 {
		height = 3
	}
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderHelp renders the full-screen key reference
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"k/j, ↑/↓", "move"},
		{"g / G", "top / bottom"},
		{"enter", "movie details"},
		{"h, backspace", "back"},
		{"1 / 2 / 3", "browse / favorites / watchlist"},
		{"n / p", "next / previous page"},
		{"f", "toggle favorite"},
		{"w", "toggle watchlist"},
		{"s", "search the catalog"},
		{"/", "filter the current view"},
		{"t", "cycle genre"},
		{"r", "random pick"},
		{"o", "toggle newest-first ordering"},
		{"?", "help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard Reference"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentStyle.Render(pad(row[0], 14)),
			styles.SubtitleStyle.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("  press any key to close"))

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, b.String())
}

// hints returns the footer key hints for the current state
func (m Model) hints() string {
	switch m.State {
	case StateDetail:
		return "f favorite · w watchlist · h back · q quit"
	case StateFavorites, StateWatchlist:
		return "enter details · f/w toggle · / filter · o sort · ? help"
	case StateSearchInput:
		return "enter search · esc cancel"
	default:
		return "enter details · f/w toggle · s search · t genre · r random · ? help"
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
