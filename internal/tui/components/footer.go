package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinemate/cinemate/internal/tui/styles"
)

// Footer is the bottom chrome line: a collection summary, a transient
// status message, and key hints. It implements sync.CountSurface.
type Footer struct {
	favorites int
	watchlist int

	status      string
	statusIsErr bool
	width       int
}

// NewFooter creates the footer component.
func NewFooter() *Footer {
	return &Footer{}
}

// SetCounts receives a count snapshot from the broadcaster.
func (f *Footer) SetCounts(favorites, watchlist int) {
	f.favorites = favorites
	f.watchlist = watchlist
}

// SetStatus sets a transient status message.
func (f *Footer) SetStatus(msg string, isErr bool) {
	f.status = msg
	f.statusIsErr = isErr
}

// ClearStatus drops the status message.
func (f *Footer) ClearStatus() {
	f.status = ""
	f.statusIsErr = false
}

// SetWidth sets the render width.
func (f *Footer) SetWidth(width int) { f.width = width }

// Counts returns the last pushed snapshot (tests).
func (f *Footer) Counts() (favorites, watchlist int) {
	return f.favorites, f.watchlist
}

// View renders the footer.
func (f *Footer) View(hints string) string {
	summary := styles.DimStyle.Render(
		fmt.Sprintf("%s %d favorites · %s %d watchlist",
			styles.FavoriteChar, f.favorites, styles.WatchlistChar, f.watchlist))

	middle := ""
	if f.status != "" {
		style := styles.SuccessStyle
		if f.statusIsErr {
			style = styles.ErrorStyle
		}
		middle = style.Render(f.status)
	}

	right := styles.DimStyle.Render(hints)

	used := lipgloss.Width(summary) + lipgloss.Width(middle) + lipgloss.Width(right)
	gap := f.width - used
	if gap < 2 {
		gap = 2
	}

	line := summary + pad(" "+middle, gap) + right
	return styles.FooterStyle.Width(max(f.width, lipgloss.Width(line))).Render(line)
}
