package sync

import (
	"fmt"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/domain"
)

// Binding ties one rendered control (a card marker or a detail-page
// action) to a single membership fact. Bindings are transient: they
// are created when a view renders and disposed when it re-renders or
// tears down. Two bindings for the same membership on different views
// stay independent; they reconverge on the next render.
type Binding struct {
	collections *collection.Service
	broadcaster *Broadcaster
	name        domain.CollectionName
	ref         domain.MovieRef

	active   bool
	disposed bool
}

// Active reports the control's current visual state. It reflects the
// last toggle result optimistically, even when the underlying write
// did not persist.
func (b *Binding) Active() bool { return b.active }

// MovieID returns the bound movie id.
func (b *Binding) MovieID() int64 { return b.ref.ID }

// Collection returns the bound collection name.
func (b *Binding) Collection() domain.CollectionName { return b.name }

// Toggle flips membership and propagates the change: it mutates the
// collection, updates this control's own state from the result, pushes
// fresh counts to every count surface, and requests scoped removal
// when it removed the movie. Disposed bindings ignore toggles.
func (b *Binding) Toggle() collection.ToggleResult {
	if b.disposed {
		return collection.ToggleResult{Added: b.active, Persisted: false}
	}

	result := b.collections.Toggle(b.name, b.ref)
	b.active = result.Added

	b.broadcaster.Broadcast()
	if !result.Added {
		b.broadcaster.Removed(b.name, b.ref.ID)
	}
	return result
}

// Refresh re-reads membership from the collection store, discarding
// any optimistic state. Used when a view regains focus without a full
// re-bind.
func (b *Binding) Refresh() {
	if b.disposed {
		return
	}
	b.active = b.collections.Contains(b.name, b.ref.ID)
}

// Dispose detaches the binding from its control. Further toggles are
// no-ops.
func (b *Binding) Dispose() { b.disposed = true }

// BindingSet owns every binding created for one rendered view. A view
// disposes the whole set before re-binding, so stale handlers cannot
// accumulate across renders.
type BindingSet struct {
	collections *collection.Service
	broadcaster *Broadcaster
	bindings    map[string]*Binding
}

// NewBindingSet creates an empty binding set for a view.
func NewBindingSet(collections *collection.Service, broadcaster *Broadcaster) *BindingSet {
	return &BindingSet{
		collections: collections,
		broadcaster: broadcaster,
		bindings:    make(map[string]*Binding),
	}
}

// Bind creates a binding for (movie, collection), seeded from the
// store's current membership. Re-binding the same pair disposes the
// previous binding first.
func (s *BindingSet) Bind(name domain.CollectionName, ref domain.MovieRef) *Binding {
	key := bindingKey(name, ref.ID)
	if prev, ok := s.bindings[key]; ok {
		prev.Dispose()
	}

	b := &Binding{
		collections: s.collections,
		broadcaster: s.broadcaster,
		name:        name,
		ref:         ref,
		active:      s.collections.Contains(name, ref.ID),
	}
	s.bindings[key] = b
	return b
}

// Get returns the live binding for (movie, collection), or nil.
func (s *BindingSet) Get(name domain.CollectionName, id int64) *Binding {
	return s.bindings[bindingKey(name, id)]
}

// Len returns the number of live bindings.
func (s *BindingSet) Len() int { return len(s.bindings) }

// DisposeAll detaches every binding and empties the set. Views call
// this before re-rendering their cards.
func (s *BindingSet) DisposeAll() {
	for _, b := range s.bindings {
		b.Dispose()
	}
	s.bindings = make(map[string]*Binding)
}

func bindingKey(name domain.CollectionName, id int64) string {
	return fmt.Sprintf("%s:%d", name, id)
}
