package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinemate/cinemate/internal/tui/styles"
)

// Tab identifies a top-level navigation entry
type Tab int

const (
	TabBrowse Tab = iota
	TabFavorites
	TabWatchlist
)

// BadgeBar is the navigation header: tab entries with live collection
// count badges. It implements sync.CountSurface; the broadcaster
// pushes fresh counts after every mutation.
type BadgeBar struct {
	favorites int
	watchlist int
	active    Tab
	width     int
}

// NewBadgeBar creates the navigation bar.
func NewBadgeBar() *BadgeBar {
	return &BadgeBar{}
}

// SetCounts receives a count snapshot from the broadcaster.
func (b *BadgeBar) SetCounts(favorites, watchlist int) {
	b.favorites = favorites
	b.watchlist = watchlist
}

// SetActive highlights the current tab.
func (b *BadgeBar) SetActive(tab Tab) { b.active = tab }

// SetWidth sets the render width.
func (b *BadgeBar) SetWidth(width int) { b.width = width }

// Counts returns the last pushed snapshot (tests).
func (b *BadgeBar) Counts() (favorites, watchlist int) {
	return b.favorites, b.watchlist
}

// View renders the navigation bar.
func (b *BadgeBar) View() string {
	brand := styles.AccentStyle.Bold(true).Render("cinemate")

	entries := []string{
		b.entry("Browse", TabBrowse, -1),
		b.entry("Favorites", TabFavorites, b.favorites),
		b.entry("Watchlist", TabWatchlist, b.watchlist),
	}

	nav := lipgloss.JoinHorizontal(lipgloss.Center, entries...)
	line := lipgloss.JoinHorizontal(lipgloss.Center, brand, "  ", nav)
	return styles.HeaderStyle.Width(max(b.width, lipgloss.Width(line))).Render(line)
}

func (b *BadgeBar) entry(label string, tab Tab, count int) string {
	style := styles.NavStyle
	if b.active == tab {
		style = styles.NavActiveStyle
	}

	text := label
	if count >= 0 {
		text = fmt.Sprintf("%s %s", label, styles.BadgeStyle.Render(fmt.Sprintf("%d", count)))
	}
	return style.Render(text)
}

// pad right-pads s with spaces to width
func pad(s string, width int) string {
	if diff := width - lipgloss.Width(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}
