package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/domain"
	"github.com/cinemate/cinemate/internal/search"
	"github.com/cinemate/cinemate/internal/tui/styles"
	uisync "github.com/cinemate/cinemate/internal/tui/sync"
)

// Card is one rendered grid row: the collection snapshot plus listing
// extras that are not persisted.
type Card struct {
	Ref      domain.MovieRef
	Overview string
}

// Grid is the movie card list for the browse and collection views.
//
// A grid scoped to a collection (favorites or watchlist view) also
// implements sync.ScopedView: the broadcaster removes cards from it
// when its backing collection loses a member, and flips it to the
// empty state when the collection drains.
type Grid struct {
	scope     domain.CollectionName // empty for the catalog browse view
	emptyText string

	cards    []Card
	bindings *uisync.BindingSet

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	// Forced empty-state (set via ShowEmptyState after a drain)
	empty bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into cards
}

// NewGrid creates a grid. A zero scope means the grid shows catalog
// results and is never a target of scoped removal.
func NewGrid(scope domain.CollectionName, emptyText string) *Grid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &Grid{
		scope:       scope,
		emptyText:   emptyText,
		filterInput: ti,
		maxVisible:  10,
	}
}

// SetBindings attaches the grid's binding set. Grids register with the
// broadcaster as scoped views before the broadcaster exists inside the
// binding set, so this is wired after construction.
func (g *Grid) SetBindings(bindings *uisync.BindingSet) {
	g.bindings = bindings
}

// Scope implements sync.ScopedView.
func (g *Grid) Scope() domain.CollectionName { return g.scope }

// SetMovies fills the grid from catalog results.
func (g *Grid) SetMovies(movies []domain.MovieSummary) {
	cards := make([]Card, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, Card{Ref: m.Ref(), Overview: m.Overview})
	}
	g.setCards(cards)
}

// SetRefs fills the grid from a local collection.
func (g *Grid) SetRefs(refs []domain.MovieRef) {
	cards := make([]Card, 0, len(refs))
	for _, ref := range refs {
		cards = append(cards, Card{Ref: ref})
	}
	g.setCards(cards)
}

func (g *Grid) setCards(cards []Card) {
	g.cards = cards
	g.cursor = 0
	g.offset = 0
	g.empty = len(cards) == 0
	g.clearFilter()
	g.rebind()
}

// rebind rebuilds every card binding from scratch. The old bindings
// are disposed first so stale handles cannot fire after a re-render.
func (g *Grid) rebind() {
	g.bindings.DisposeAll()
	for _, card := range g.cards {
		g.bindings.Bind(domain.CollectionFavorites, card.Ref)
		g.bindings.Bind(domain.CollectionWatchlist, card.Ref)
	}
}

// RemoveCard implements sync.ScopedView: drops the rendered card for
// the movie id and clamps the selection.
func (g *Grid) RemoveCard(id int64) {
	for i, card := range g.cards {
		if card.Ref.ID == id {
			g.cards = append(g.cards[:i], g.cards[i+1:]...)
			break
		}
	}
	if g.cursor >= len(g.cards) && g.cursor > 0 {
		g.cursor--
	}
	g.applyFilter()
}

// ShowEmptyState implements sync.ScopedView.
func (g *Grid) ShowEmptyState() { g.empty = true }

// Empty reports whether the grid is in its empty-state presentation.
func (g *Grid) Empty() bool { return g.empty || len(g.cards) == 0 }

// Len returns the number of cards after filtering.
func (g *Grid) Len() int { return len(g.visible()) }

// Selected returns the card under the cursor, or nil.
func (g *Grid) Selected() *Card {
	visible := g.visible()
	if g.cursor < 0 || g.cursor >= len(visible) {
		return nil
	}
	return &g.cards[visible[g.cursor]]
}

// ToggleSelected toggles the selected card's membership in the named
// collection via its binding. The binding propagates counts and any
// scoped removal. The second return is false when nothing is selected.
func (g *Grid) ToggleSelected(name domain.CollectionName) (collection.ToggleResult, bool) {
	card := g.Selected()
	if card == nil {
		return collection.ToggleResult{}, false
	}
	binding := g.bindings.Get(name, card.Ref.ID)
	if binding == nil {
		return collection.ToggleResult{}, false
	}
	return binding.Toggle(), true
}

// MoveUp moves the selection up one row.
func (g *Grid) MoveUp() {
	if g.cursor > 0 {
		g.cursor--
		if g.cursor < g.offset {
			g.offset = g.cursor
		}
	}
}

// MoveDown moves the selection down one row.
func (g *Grid) MoveDown() {
	if g.cursor < g.Len()-1 {
		g.cursor++
		if g.cursor >= g.offset+g.maxVisible {
			g.offset = g.cursor - g.maxVisible + 1
		}
	}
}

// Home moves the selection to the first row.
func (g *Grid) Home() {
	g.cursor = 0
	g.offset = 0
}

// End moves the selection to the last row.
func (g *Grid) End() {
	g.cursor = g.Len() - 1
	if g.cursor < 0 {
		g.cursor = 0
	}
	if g.cursor >= g.offset+g.maxVisible {
		g.offset = g.cursor - g.maxVisible + 1
	}
}

// SetSize sets the render dimensions.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.maxVisible = height - 2 // filter line + scroll indicator
	if g.maxVisible < 1 {
		g.maxVisible = 1
	}
}

// FilterActive reports whether the filter input has focus.
func (g *Grid) FilterActive() bool { return g.filterActive }

// StartFilter focuses the filter input.
func (g *Grid) StartFilter() {
	g.filterActive = true
	g.filterInput.Focus()
}

// UpdateFilter feeds a key message to the filter input.
func (g *Grid) UpdateFilter(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.filterInput, cmd = g.filterInput.Update(msg)
	g.applyFilter()
	return cmd
}

// StopFilter blurs the filter input, keeping the applied query.
func (g *Grid) StopFilter() {
	g.filterActive = false
	g.filterInput.Blur()
}

// ClearFilter resets the filter entirely.
func (g *Grid) ClearFilter() {
	g.filterActive = false
	g.filterInput.Blur()
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterInput.SetValue("")
	g.filteredIdx = nil
}

func (g *Grid) applyFilter() {
	query := strings.TrimSpace(g.filterInput.Value())
	if query == "" {
		g.filteredIdx = nil
		return
	}

	titles := make([]string, len(g.cards))
	for i, card := range g.cards {
		titles[i] = card.Ref.Title
	}

	// Collection views are small and user-curated, so rank matches by
	// edit distance; the catalog view keeps keystroke-subsequence
	// matching for incremental narrowing.
	if g.scope != "" {
		g.filteredIdx = search.RankTitles(query, titles)
	} else {
		g.filteredIdx = search.Filter(query, titles)
	}
	g.cursor = 0
	g.offset = 0
}

// visible returns the card indexes after filtering.
func (g *Grid) visible() []int {
	if g.filteredIdx != nil {
		return g.filteredIdx
	}
	all := make([]int, len(g.cards))
	for i := range g.cards {
		all[i] = i
	}
	return all
}

// View renders the grid.
func (g *Grid) View() string {
	if g.Empty() {
		return styles.EmptyStateStyle.Render(g.emptyText)
	}

	var b strings.Builder

	if g.filterActive || g.filterInput.Value() != "" {
		b.WriteString(g.filterInput.View())
		b.WriteString("\n")
	}

	visible := g.visible()
	end := g.offset + g.maxVisible
	if end > len(visible) {
		end = len(visible)
	}

	for row := g.offset; row < end; row++ {
		card := g.cards[visible[row]]
		b.WriteString(g.renderCard(card, row == g.cursor))
		b.WriteString("\n")
	}

	if end < len(visible) {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("↓ %d more", len(visible)-end)))
	}

	return b.String()
}

// renderCard renders one row: collection markers, title, year, rating.
func (g *Grid) renderCard(card Card, selected bool) string {
	fav := styles.FavoriteOffStyle.Render(styles.FavoriteChar)
	if b := g.bindings.Get(domain.CollectionFavorites, card.Ref.ID); b != nil && b.Active() {
		fav = styles.FavoriteOnStyle.Render(styles.FavoriteChar)
	}

	watch := styles.WatchlistOffStyle.Render(styles.WatchlistChar)
	if b := g.bindings.Get(domain.CollectionWatchlist, card.Ref.ID); b != nil && b.Active() {
		watch = styles.WatchlistOnStyle.Render(styles.WatchlistChar)
	}

	title := card.Ref.Title
	if year := card.Ref.ReleaseYear(); year > 0 {
		title = fmt.Sprintf("%s (%d)", title, year)
	}

	rating := styles.DimStyle.Render("★ " + card.Ref.FormattedRating())

	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}

	row := fmt.Sprintf("%s %s  %s  %s", fav, watch, style.Render(title), rating)
	return row
}
