package collection

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/cinemate/cinemate/internal/domain"
)

// ToggleResult reports what a Toggle did.
type ToggleResult struct {
	Added     bool // true when the toggle added the movie, false when it removed it
	Persisted bool // result of the underlying store write (duplicate adds report true)
}

// Service owns the favorites and watchlist collections. It is the only
// writer of their storage records and preserves the membership
// invariants by construction: at most one entry per movie id, and the
// two collections never affect each other.
//
// Expected conditions (duplicate add, remove of an absent id, corrupt
// storage) are never errors here; they surface as booleans, matching
// the fail-open contract of the store underneath.
type Service struct {
	store  domain.KeyValueStore
	logger *slog.Logger

	// Guards the read-modify-write cycle. Mutations arrive from
	// tea.Cmd goroutines, so the single-writer requirement is
	// enforced with a lock rather than by event-loop ordering.
	mu sync.Mutex
}

// NewService creates a collection service over the given store.
func NewService(store domain.KeyValueStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// List returns the named collection in insertion order. An absent or
// corrupt record reads as an empty collection.
func (s *Service) List(name domain.CollectionName) []domain.MovieRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(name)
}

// Contains reports whether the movie id is in the named collection.
func (s *Service) Contains(name domain.CollectionName, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.load(name), id)
}

// Add appends the movie to the named collection. It returns false
// without writing when the id is already present; otherwise it returns
// the store write result.
func (s *Service) Add(name domain.CollectionName, ref domain.MovieRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := s.load(name)
	if contains(refs, ref.ID) {
		return false
	}

	persisted := s.store.Write(name.String(), append(refs, ref))
	if !persisted {
		s.logger.Warn("collection write failed", "collection", name, "id", ref.ID)
	}
	s.logger.Debug("added to collection", "collection", name, "id", ref.ID, "title", ref.Title)
	return persisted
}

// Remove drops any entry with the movie id and persists the remainder.
// Removing an absent id still rewrites the (unchanged) collection and
// returns that write result.
func (s *Service) Remove(name domain.CollectionName, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := s.load(name)
	filtered := make([]domain.MovieRef, 0, len(refs))
	for _, ref := range refs {
		if ref.ID != id {
			filtered = append(filtered, ref)
		}
	}

	persisted := s.store.Write(name.String(), filtered)
	if !persisted {
		s.logger.Warn("collection write failed", "collection", name, "id", id)
	}
	s.logger.Debug("removed from collection", "collection", name, "id", id)
	return persisted
}

// Toggle flips membership: present removes, absent adds. Exactly one
// of the two mutations fires.
func (s *Service) Toggle(name domain.CollectionName, ref domain.MovieRef) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := s.load(name)
	if contains(refs, ref.ID) {
		filtered := make([]domain.MovieRef, 0, len(refs)-1)
		for _, r := range refs {
			if r.ID != ref.ID {
				filtered = append(filtered, r)
			}
		}
		persisted := s.store.Write(name.String(), filtered)
		if !persisted {
			s.logger.Warn("collection write failed", "collection", name, "id", ref.ID)
		}
		return ToggleResult{Added: false, Persisted: persisted}
	}

	persisted := s.store.Write(name.String(), append(refs, ref))
	if !persisted {
		s.logger.Warn("collection write failed", "collection", name, "id", ref.ID)
	}
	return ToggleResult{Added: true, Persisted: persisted}
}

// Count returns the size of the named collection.
func (s *Service) Count(name domain.CollectionName) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load(name))
}

// Counts returns both collection sizes for badge surfaces.
func (s *Service) Counts() (favorites, watchlist int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load(domain.CollectionFavorites)), len(s.load(domain.CollectionWatchlist))
}

// load re-derives the collection from storage. Truth always lives in
// the store; there is no in-memory copy to roll back after a failed
// write, so a failed mutation simply does not survive a reload.
func (s *Service) load(name domain.CollectionName) []domain.MovieRef {
	var refs []domain.MovieRef
	if !s.store.Read(name.String(), &refs) {
		return []domain.MovieRef{}
	}
	if refs == nil {
		refs = []domain.MovieRef{}
	}
	return refs
}

func contains(refs []domain.MovieRef, id int64) bool {
	for _, ref := range refs {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// SortNewestFirst returns a copy of refs ordered by release date
// descending. Ordering is a view-time concern; the stored records stay
// in insertion order.
func SortNewestFirst(refs []domain.MovieRef) []domain.MovieRef {
	sorted := make([]domain.MovieRef, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleaseDate > sorted[j].ReleaseDate
	})
	return sorted
}
