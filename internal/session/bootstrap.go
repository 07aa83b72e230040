package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/service"
)

// Outcome is the result of the session bootstrap.
type Outcome int

const (
	// OutcomeRestored means the stored token is valid and the session is set.
	OutcomeRestored Outcome = iota
	// OutcomeUnauthenticated means the token was missing or rejected; the
	// session is cleared and the UI should redirect to login.
	OutcomeUnauthenticated
	// OutcomeUnreachable means the probe itself failed (network); the
	// session is cleared the same way.
	OutcomeUnreachable
)

// Bootstrap runs the who-am-I probe exactly once per process. Repeated Run
// calls return the first outcome without re-probing; the restore itself only
// ever replaces the session wholesale, so even a second probe would be
// harmless.
type Bootstrap struct {
	auth *service.AuthService
	log  zerolog.Logger

	once    sync.Once
	outcome Outcome
}

func NewBootstrap(auth *service.AuthService, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{auth: auth, log: log}
}

// Run probes the upstream with the stored token and settles the session
// container one way or the other.
func (b *Bootstrap) Run(ctx context.Context, token string) Outcome {
	b.once.Do(func() {
		res := b.auth.Restore(ctx, token)
		switch {
		case res.Success:
			b.outcome = OutcomeRestored
		case res.Status == 0:
			b.log.Warn().Msg("session bootstrap could not reach the API")
			b.outcome = OutcomeUnreachable
		default:
			b.outcome = OutcomeUnauthenticated
		}
	})
	return b.outcome
}
