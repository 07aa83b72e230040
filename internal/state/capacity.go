package state

import (
	"sync"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// CapacitySnapshot is a point-in-time copy of the report container.
type CapacitySnapshot struct {
	Report   *domain.CapacityReport
	Loading  bool
	Error    string
	Hydrated bool
}

func (s CapacitySnapshot) Phase() Phase {
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

// CapacityStore holds the last fetched production-capacity report. The
// report is replaced wholesale on every successful fetch.
type CapacityStore struct {
	mu       sync.Mutex
	report   *domain.CapacityReport
	loading  bool
	err      string
	hydrated bool
}

func NewCapacityStore() *CapacityStore {
	return &CapacityStore{}
}

func (s *CapacityStore) SetReport(r *domain.CapacityReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *r
	clone.Items = append([]domain.CapacityItem(nil), r.Items...)
	s.report = &clone
	s.err = ""
	s.loading = false
	s.hydrated = true
}

func (s *CapacityStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *CapacityStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.loading = false
}

func (s *CapacityStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = nil
	s.loading = false
	s.err = ""
	s.hydrated = false
}

func (s *CapacityStore) Snapshot() CapacitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := CapacitySnapshot{Loading: s.loading, Error: s.err, Hydrated: s.hydrated}
	if s.report != nil {
		clone := *s.report
		clone.Items = append([]domain.CapacityItem(nil), s.report.Items...)
		snap.Report = &clone
	}
	return snap
}
