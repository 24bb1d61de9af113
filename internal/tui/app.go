package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/config"
	"github.com/cinemate/cinemate/internal/domain"
	"github.com/cinemate/cinemate/internal/tui/components"
	"github.com/cinemate/cinemate/internal/tui/styles"
	uisync "github.com/cinemate/cinemate/internal/tui/sync"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowse ApplicationState = iota
	StateFavorites
	StateWatchlist
	StateDetail
	StateSearchInput
	StateHelp
)

// Chrome height: badge bar + footer, one border line each
const chromeHeight = 4

// Model is the main Bubble Tea model for the application
type Model struct {
	State     ApplicationState
	prevState ApplicationState // view to return to when leaving detail
	Ready     bool

	// Collaborators
	Catalog     domain.CatalogRepository
	Ratings     domain.RatingsRepository
	Collections *collection.Service

	// Cross-view synchronization
	Broadcaster *uisync.Broadcaster

	// UI components
	BadgeBar   *components.BadgeBar
	Footer     *components.Footer
	BrowseGrid *components.Grid
	FavGrid    *components.Grid
	WatchGrid  *components.Grid
	Detail     *components.Detail

	SearchInput textinput.Model

	// Browse state
	SectionTitle string
	Page         int
	TotalPages   int
	Genres       []domain.Genre
	GenreIdx     int // index into Genres; -1 = all genres

	// Collection view ordering
	SortNewest bool

	// Dimensions
	Width  int
	Height int

	// UI state
	Loading      bool
	SpinnerFrame int

	Keys   KeyMap
	logger *slog.Logger
}

// NewModel wires the application model. The broadcaster's surface
// registry is fixed here: badge bar and footer receive counts, the two
// collection grids receive scoped removal.
func NewModel(
	catalog domain.CatalogRepository,
	ratings domain.RatingsRepository,
	collections *collection.Service,
	ui config.UIConfig,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	badgeBar := components.NewBadgeBar()
	footer := components.NewFooter()

	browseGrid := components.NewGrid("", "No movies to show")
	favGrid := components.NewGrid(domain.CollectionFavorites,
		"No favorites yet.\nBrowse movies and press f to add one.")
	watchGrid := components.NewGrid(domain.CollectionWatchlist,
		"Your watchlist is empty.\nBrowse movies and press w to add one.")

	broadcaster := uisync.NewBroadcaster(
		collections,
		[]uisync.CountSurface{badgeBar, footer},
		[]uisync.ScopedView{favGrid, watchGrid},
		logger,
	)

	browseGrid.SetBindings(uisync.NewBindingSet(collections, broadcaster))
	favGrid.SetBindings(uisync.NewBindingSet(collections, broadcaster))
	watchGrid.SetBindings(uisync.NewBindingSet(collections, broadcaster))
	detail := components.NewDetail(uisync.NewBindingSet(collections, broadcaster))

	searchInput := textinput.New()
	searchInput.Placeholder = "movie title..."
	searchInput.Prompt = "Search: "
	searchInput.PromptStyle = styles.FilterPromptStyle
	searchInput.TextStyle = styles.FilterStyle

	// Seed badge and footer counts from storage
	broadcaster.Broadcast()

	return Model{
		State:       StateBrowse,
		Catalog:     catalog,
		Ratings:     ratings,
		Collections: collections,
		Broadcaster: broadcaster,
		BadgeBar:    badgeBar,
		Footer:      footer,
		BrowseGrid:  browseGrid,
		FavGrid:     favGrid,
		WatchGrid:   watchGrid,
		Detail:      detail,
		SearchInput: searchInput,
		Page:        1,
		GenreIdx:    -1,
		SortNewest:  ui.DefaultSort != "insertion",
		Keys:        DefaultKeyMap(),
		logger:      logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadPopularCmd(m.Catalog, 1),
		LoadGenresCmd(m.Catalog),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if m.Loading {
			m.SpinnerFrame++
			return m, TickCmd(100 * time.Millisecond)
		}
		return m, nil

	case PageLoadedMsg:
		m.Loading = false
		m.SectionTitle = msg.Title
		m.Page = msg.Page.Page
		m.TotalPages = msg.Page.TotalPages
		m.BrowseGrid.SetMovies(msg.Page.Results)
		return m, nil

	case GenresLoadedMsg:
		m.Genres = msg.Genres
		return m, nil

	case DetailLoadedMsg:
		m.Loading = false
		if m.State != StateDetail {
			m.prevState = m.State
		}
		m.State = StateDetail
		m.Detail.SetMovie(msg.Movie)
		return m, LoadRatingsCmd(m.Ratings, msg.Movie.ID, msg.Movie.Title, msg.Movie.ReleaseYear())

	case RatingsLoadedMsg:
		// Drop stale lookups if the user already moved on
		if movie := m.Detail.Movie(); movie != nil && movie.ID == msg.MovieID {
			m.Detail.SetRatings(msg.Ratings)
		}
		return m, nil

	case RandomPickMsg:
		m.Loading = true
		m.Footer.SetStatus("Random pick: "+msg.Movie.Title, false)
		return m, tea.Batch(
			LoadDetailCmd(m.Catalog, msg.Movie.ID),
			ClearStatusCmd(4*time.Second),
			TickCmd(100*time.Millisecond),
		)

	case StatusMsg:
		m.Loading = false
		m.Footer.SetStatus(msg.Message, msg.IsError)
		return m, ClearStatusCmd(4 * time.Second)

	case ClearStatusMsg:
		m.Footer.ClearStatus()
		return m, nil

	case ErrMsg:
		m.Loading = false
		m.logger.Error("tui error", "context", msg.Context, "error", msg.Err)
		m.Footer.SetStatus(msg.Error(), true)
		return m, ClearStatusCmd(5 * time.Second)
	}

	return m, nil
}

// updateLayout propagates the window size to every component
func (m *Model) updateLayout() {
	contentHeight := m.Height - chromeHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	m.BadgeBar.SetWidth(m.Width)
	m.Footer.SetWidth(m.Width)
	m.BrowseGrid.SetSize(m.Width, contentHeight-2) // section title + paging line
	m.FavGrid.SetSize(m.Width, contentHeight-1)
	m.WatchGrid.SetSize(m.Width, contentHeight-1)
	m.Detail.SetSize(m.Width, contentHeight)
	m.SearchInput.Width = m.Width - 12
}

// activeGrid returns the grid for the current state, or nil
func (m *Model) activeGrid() *components.Grid {
	switch m.State {
	case StateBrowse:
		return m.BrowseGrid
	case StateFavorites:
		return m.FavGrid
	case StateWatchlist:
		return m.WatchGrid
	default:
		return nil
	}
}

// showCollection re-renders a collection view from storage. Render
// order is a view-time choice: newest-first by release date, or the
// stored insertion order.
func (m *Model) showCollection(state ApplicationState) {
	m.State = state

	name := domain.CollectionFavorites
	grid := m.FavGrid
	tab := components.TabFavorites
	if state == StateWatchlist {
		name = domain.CollectionWatchlist
		grid = m.WatchGrid
		tab = components.TabWatchlist
	}

	refs := m.Collections.List(name)
	if m.SortNewest {
		refs = collection.SortNewestFirst(refs)
	}
	grid.SetRefs(refs)
	m.BadgeBar.SetActive(tab)
}

// statusForToggle reports a toggle outcome on the footer; unpersisted
// writes get a warning since the visual state is now ahead of disk.
func (m *Model) statusForToggle(result collection.ToggleResult, name domain.CollectionName) tea.Cmd {
	if !result.Persisted {
		m.Footer.SetStatus("Storage write failed; change may not survive a restart", true)
		return ClearStatusCmd(5 * time.Second)
	}

	verb := "Removed from"
	if result.Added {
		verb = "Added to"
	}
	m.Footer.SetStatus(verb+" "+name.String(), false)
	return ClearStatusCmd(2 * time.Second)
}
