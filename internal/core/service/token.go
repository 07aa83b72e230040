package service

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/state"
)

// TokenSource supplies the bearer token for authenticated calls. The second
// return is false when no credential is available, which orchestrators turn
// into a 401-class result without touching the network.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// SessionTokenSource reads the token from the session container — the normal
// wiring once a login or bootstrap has run.
type SessionTokenSource struct {
	Session *state.SessionStore
}

func (s SessionTokenSource) Token(context.Context) (string, bool) {
	snap := s.Session.Snapshot()
	return snap.Token, snap.Token != ""
}

// StaticTokenSource returns a fixed token. Used in tests and one-off calls.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, bool) {
	return string(s), s != ""
}
