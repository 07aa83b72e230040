package state

import (
	"sync"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// SessionSnapshot is a point-in-time copy of the session container.
type SessionSnapshot struct {
	User     *domain.User
	Token    string
	Loading  bool
	Error    string
	Hydrated bool
}

func (s SessionSnapshot) Phase() Phase {
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

// Authenticated reports whether a user is currently signed in.
func (s SessionSnapshot) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// SessionStore holds the single process-wide session. Set and Clear replace
// the whole record; there is no partial patching, so a bootstrap that runs
// twice is harmless.
type SessionStore struct {
	mu       sync.Mutex
	user     *domain.User
	token    string
	loading  bool
	err      string
	hydrated bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Set installs an authenticated session.
func (s *SessionStore) Set(user *domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.user = &clone
	s.token = token
	s.err = ""
	s.loading = false
	s.hydrated = true
}

// Clear drops the session but leaves the container hydrated: the bootstrap
// has run and its answer is "not signed in".
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.err = ""
	s.loading = false
	s.hydrated = true
}

// Reset returns the container to its pre-bootstrap idle state. Used by tests
// and logout-then-login flows.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.err = ""
	s.loading = false
	s.hydrated = false
}

func (s *SessionStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *SessionStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.loading = false
}

func (s *SessionStore) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SessionSnapshot{Token: s.token, Loading: s.loading, Error: s.err, Hydrated: s.hydrated}
	if s.user != nil {
		clone := *s.user
		snap.User = &clone
	}
	return snap
}
