package components

import (
	"fmt"
	"strings"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/domain"
	"github.com/cinemate/cinemate/internal/tui/styles"
	uisync "github.com/cinemate/cinemate/internal/tui/sync"
)

// Detail is the movie detail panel. Its two action buttons are bound
// independently from any grid card for the same movie; the two
// controls reconverge on the next render, not through each other.
type Detail struct {
	movie   *domain.MovieDetail
	ratings *domain.Ratings

	bindings *uisync.BindingSet

	width  int
	height int
}

// NewDetail creates the detail panel with its own binding set.
func NewDetail(bindings *uisync.BindingSet) *Detail {
	return &Detail{bindings: bindings}
}

// SetMovie sets the displayed movie and re-binds the action buttons.
func (d *Detail) SetMovie(movie *domain.MovieDetail) {
	d.movie = movie
	d.ratings = nil

	d.bindings.DisposeAll()
	if movie != nil {
		d.bindings.Bind(domain.CollectionFavorites, movie.Ref())
		d.bindings.Bind(domain.CollectionWatchlist, movie.Ref())
	}
}

// SetRatings attaches critic scores once the ratings lookup lands.
func (d *Detail) SetRatings(ratings *domain.Ratings) { d.ratings = ratings }

// Movie returns the displayed movie, or nil.
func (d *Detail) Movie() *domain.MovieDetail { return d.movie }

// SetSize sets the render dimensions.
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Toggle flips the displayed movie's membership via the panel's own
// binding. The second return is false when no movie is shown.
func (d *Detail) Toggle(name domain.CollectionName) (collection.ToggleResult, bool) {
	if d.movie == nil {
		return collection.ToggleResult{}, false
	}
	binding := d.bindings.Get(name, d.movie.ID)
	if binding == nil {
		return collection.ToggleResult{}, false
	}
	return binding.Toggle(), true
}

// View renders the detail panel.
func (d *Detail) View() string {
	if d.movie == nil {
		return styles.EmptyStateStyle.Render("No movie selected")
	}
	m := d.movie

	var b strings.Builder

	title := m.Title
	if year := m.ReleaseYear(); year > 0 {
		title = fmt.Sprintf("%s (%d)", title, year)
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	if m.Tagline != "" {
		b.WriteString(styles.SubtitleStyle.Italic(true).Render(m.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(d.renderActions())
	b.WriteString("\n\n")

	var facts []string
	if runtime := m.FormattedRuntime(); runtime != "" {
		facts = append(facts, runtime)
	}
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		facts = append(facts, strings.Join(names, ", "))
	}
	facts = append(facts, "★ "+m.FormattedRating())
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")))
	b.WriteString("\n\n")

	if m.Overview != "" {
		b.WriteString(wrap(m.Overview, d.width-4))
		b.WriteString("\n\n")
	}

	b.WriteString(d.renderRatings())

	if len(m.Cast) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("Cast"))
		b.WriteString("\n")
		for _, c := range m.Cast {
			line := c.Name
			if c.Character != "" {
				line = fmt.Sprintf("%s  %s", c.Name, styles.DimStyle.Render("as "+c.Character))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.Budget > 0 || m.Revenue > 0 {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(
			fmt.Sprintf("Budget %s  ·  Revenue %s", formatMoney(m.Budget), formatMoney(m.Revenue))))
		b.WriteString("\n")
	}

	if m.BelongsTo != nil {
		b.WriteString(styles.DimStyle.Render("Part of " + m.BelongsTo.Name))
		b.WriteString("\n")
	}

	if m.TrailerURL != "" {
		b.WriteString(styles.DimStyle.Render("Trailer: " + m.TrailerURL))
		b.WriteString("\n")
	}

	return styles.DetailStyle.Render(b.String())
}

// renderActions draws the two toggle buttons from their binding state.
func (d *Detail) renderActions() string {
	fav := styles.FavoriteOffStyle.Render(styles.FavoriteChar + " Favorite")
	if b := d.bindings.Get(domain.CollectionFavorites, d.movie.ID); b != nil && b.Active() {
		fav = styles.FavoriteOnStyle.Render(styles.FavoriteChar + " Favorited")
	}

	watch := styles.WatchlistOffStyle.Render(styles.WatchlistChar + " Watchlist")
	if b := d.bindings.Get(domain.CollectionWatchlist, d.movie.ID); b != nil && b.Active() {
		watch = styles.WatchlistOnStyle.Render(styles.WatchlistChar + " On watchlist")
	}

	return fmt.Sprintf("[f] %s   [w] %s", fav, watch)
}

func (d *Detail) renderRatings() string {
	if d.ratings == nil || !d.ratings.HasAny() {
		return ""
	}

	var parts []string
	if d.ratings.IMDb != "" {
		parts = append(parts, "IMDb "+d.ratings.IMDb)
	}
	if d.ratings.RottenTomatoes != "" {
		parts = append(parts, "RT "+d.ratings.RottenTomatoes)
	}
	if d.ratings.Metascore != "" {
		parts = append(parts, "Metascore "+d.ratings.Metascore)
	}
	return styles.AccentStyle.Render(strings.Join(parts, "  ·  ")) + "\n"
}

func formatMoney(amount int64) string {
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(amount)/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.0fM", float64(amount)/1_000_000)
	case amount > 0:
		return fmt.Sprintf("$%d", amount)
	default:
		return "—"
	}
}

// wrap soft-wraps text at width columns
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		if lineLen > 0 && lineLen+len(word)+1 > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
