// Package optimistic keeps an in-memory mirror of a collection that can be
// patched ahead of the store and reverted if the store rejects the write.
//
// The visible collection is always the confirmed base with every pending
// patch replayed over it in the order they were applied. Rolling one patch
// back rebuilds from the base without it, so overlapping drops never undo
// each other. Patches must therefore be safe to run more than once.
package optimistic

// Token identifies one applied patch
type Token[T any] struct {
	id uint64
}

// Valid reports whether the token came from a patch that was applied
func (t Token[T]) Valid() bool {
	return t.id != 0
}

type entry[T any] struct {
	id        uint64
	patch     func([]T) []T
	confirmed bool
}

// State is the collection a view renders. It is not safe for concurrent
// use; the event loop owns it.
type State[T any] struct {
	base    []T // last fetch plus confirmed patches
	items   []T // base with the log replayed
	log     []entry[T]
	clone   func(T) T
	version uint64
	nextID  uint64
}

// New returns an empty state. clone deep-copies one element; nil means
// elements are copied by value.
func New[T any](clone func(T) T) *State[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &State[T]{clone: clone}
}

// Items returns the current collection. Callers must not modify it.
func (s *State[T]) Items() []T {
	return s.items
}

// Len returns the number of items
func (s *State[T]) Len() int {
	return len(s.items)
}

// Version increases every time the collection changes
func (s *State[T]) Version() uint64 {
	return s.version
}

// Pending returns the number of patches not yet confirmed or rolled back
func (s *State[T]) Pending() int {
	n := 0
	for _, e := range s.log {
		if !e.confirmed {
			n++
		}
	}
	return n
}

// Find returns the index of the first item matching fn, or -1
func (s *State[T]) Find(fn func(T) bool) int {
	for i, v := range s.items {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Apply records patch and runs it over the visible collection. The patch
// receives a private copy so it may modify it in place.
func (s *State[T]) Apply(patch func([]T) []T) Token[T] {
	s.nextID++
	s.log = append(s.log, entry[T]{id: s.nextID, patch: patch})
	s.items = patch(s.copyOf(s.items))
	s.version++
	return Token[T]{id: s.nextID}
}

// Rollback drops the patch held by tok and rebuilds the collection from
// the base and the patches still in the log. A settled token changes
// nothing.
func (s *State[T]) Rollback(tok Token[T]) bool {
	i := s.indexOf(tok)
	if i < 0 || s.log[i].confirmed {
		return false
	}
	s.log = append(s.log[:i], s.log[i+1:]...)
	s.fold()
	s.rebuild()
	return true
}

// Confirm marks tok as accepted by the store. Confirmed patches fold into
// the base once every patch applied before them has settled.
func (s *State[T]) Confirm(tok Token[T]) {
	i := s.indexOf(tok)
	if i < 0 {
		return
	}
	s.log[i].confirmed = true
	s.fold()
}

// Replace swaps in freshly fetched data as the new base. Patches still in
// flight are replayed over it so a refetch never hides them.
func (s *State[T]) Replace(items []T) {
	s.base = items
	s.rebuild()
}

// fold moves confirmed patches at the head of the log into the base
func (s *State[T]) fold() {
	for len(s.log) > 0 && s.log[0].confirmed {
		s.base = s.log[0].patch(s.copyOf(s.base))
		s.log = s.log[1:]
	}
}

func (s *State[T]) rebuild() {
	items := s.base
	for _, e := range s.log {
		items = e.patch(s.copyOf(items))
	}
	s.items = items
	s.version++
}

func (s *State[T]) indexOf(tok Token[T]) int {
	for i, e := range s.log {
		if e.id == tok.id {
			return i
		}
	}
	return -1
}

func (s *State[T]) copyOf(items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = s.clone(v)
	}
	return out
}
