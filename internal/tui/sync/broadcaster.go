// Package sync keeps every rendered surface that displays collection
// membership in agreement after a mutation: navigation badges, footer
// counts, per-card toggle markers, and collection-scoped grids.
//
// There is no subscription stream. The toggle call path invokes the
// broadcaster explicitly and it pushes a full snapshot of both counts
// to every registered surface, so each call is idempotent.
package sync

import (
	"log/slog"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/domain"
)

// CountSurface is any surface that displays the collection sizes.
// Surfaces that do not exist in the current view register NoopSurface
// (or nothing at all); a missing surface is never an error.
type CountSurface interface {
	SetCounts(favorites, watchlist int)
}

// NoopSurface discards count updates. It is the composition-time
// default for surfaces a view does not render.
type NoopSurface struct{}

func (NoopSurface) SetCounts(int, int) {}

// ScopedView is a view whose content is defined by one collection.
// After a removal from that collection the broadcaster drops the
// rendered card and, if the backing collection drained, switches the
// view to its empty-state presentation.
type ScopedView interface {
	// Scope returns the collection this view is backed by.
	Scope() domain.CollectionName

	// RemoveCard drops the rendered card for the movie id.
	RemoveCard(id int64)

	// ShowEmptyState switches from populated grid to empty-state.
	ShowEmptyState()
}

// Broadcaster pushes collection state to registered surfaces. The
// registry is fixed at construction; surfaces are explicit handles,
// not ambient lookups.
type Broadcaster struct {
	collections *collection.Service
	surfaces    []CountSurface
	views       []ScopedView
	logger      *slog.Logger
}

// NewBroadcaster creates a broadcaster over the given surfaces and
// scoped views. Nil entries are tolerated and skipped.
func NewBroadcaster(collections *collection.Service, surfaces []CountSurface, views []ScopedView, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		collections: collections,
		surfaces:    surfaces,
		views:       views,
		logger:      logger,
	}
}

// Broadcast recomputes both collection counts and pushes them to every
// registered surface. Safe to call any number of times; every call is
// a full re-render of the count surfaces.
func (b *Broadcaster) Broadcast() {
	favorites, watchlist := b.collections.Counts()
	for _, surface := range b.surfaces {
		if surface == nil {
			continue
		}
		surface.SetCounts(favorites, watchlist)
	}
	b.logger.Debug("broadcast counts", "favorites", favorites, "watchlist", watchlist)
}

// Removed performs scoped removal: views backed by the mutated
// collection drop the card, and drain to their empty state. Views
// scoped to the other collection (or unscoped) are untouched.
func (b *Broadcaster) Removed(name domain.CollectionName, id int64) {
	remaining := b.collections.Count(name)
	for _, view := range b.views {
		if view == nil || view.Scope() != name {
			continue
		}
		view.RemoveCard(id)
		if remaining == 0 {
			view.ShowEmptyState()
		}
	}
}
