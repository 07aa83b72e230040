// Package state holds the per-resource in-memory containers the dashboard
// renders from. Each container is written only through its defined
// transitions and only by its own orchestrators; reads return copies so
// callers never observe a half-applied update.
//
// There is deliberately no request-sequencing guard: when two fetches for
// the same resource overlap, the last response to arrive wins, matching the
// single-flight usage pattern of the UI.
package state

import "sync"

// Phase is the coarse lifecycle of a container.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseErrored Phase = "errored"
)

// Pagination mirrors the server-computed paging totals. The client displays
// these values and never recomputes them after a mutation; a re-fetch is the
// only way they change.
type Pagination struct {
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func defaultPagination() Pagination {
	return Pagination{Size: 10}
}

// CollectionSnapshot is a point-in-time copy of a collection container.
type CollectionSnapshot[T any] struct {
	Items      []T
	Selected   *T
	Pagination Pagination
	Loading    bool
	Error      string
	Hydrated   bool
}

// Phase reports where the container is in its idle → loading →
// {ready, errored} lifecycle.
func (s CollectionSnapshot[T]) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Error != "":
		return PhaseErrored
	case s.Hydrated:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// CollectionStore holds one paginated resource's current page. T is the
// resource record type (raw material, product).
type CollectionStore[T any] struct {
	mu         sync.Mutex
	items      []T
	selected   *T
	pagination Pagination
	loading    bool
	err        string
	hydrated   bool
}

func NewCollectionStore[T any]() *CollectionStore[T] {
	return &CollectionStore[T]{pagination: defaultPagination()}
}

// SetPage replaces the whole collection slice with one server page. Clears
// the error and marks the container hydrated and settled.
func (s *CollectionStore[T]) SetPage(items []T, p Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), items...)
	s.pagination = p
	s.err = ""
	s.loading = false
	s.hydrated = true
}

// SetLoading marks the start or end of an in-flight request.
func (s *CollectionStore[T]) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetError records a user-facing failure message and settles the container.
// The message stays visible until the next successful transition.
func (s *CollectionStore[T]) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.loading = false
}

// Select remembers the record the UI is focused on (detail view, edit form).
func (s *CollectionStore[T]) Select(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item == nil {
		s.selected = nil
		return
	}
	clone := *item
	s.selected = &clone
}

// ClearItems empties the slice while keeping pagination and hydration, used
// by search so stale rows never show under a new filter's spinner.
func (s *CollectionStore[T]) ClearItems() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Clear resets the container to its initial idle state.
func (s *CollectionStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.selected = nil
	s.pagination = defaultPagination()
	s.loading = false
	s.err = ""
	s.hydrated = false
}

// Snapshot returns a copy of the current state.
func (s *CollectionStore[T]) Snapshot() CollectionSnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := CollectionSnapshot[T]{
		Items:      append([]T(nil), s.items...),
		Pagination: s.pagination,
		Loading:    s.loading,
		Error:      s.err,
		Hydrated:   s.hydrated,
	}
	if s.selected != nil {
		clone := *s.selected
		snap.Selected = &clone
	}
	return snap
}
