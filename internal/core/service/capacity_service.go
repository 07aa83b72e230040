package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
)

// CapacityService orchestrates the read-only production-capacity report.
type CapacityService struct {
	gw     ports.CapacityGateway
	store  *state.CapacityStore
	tokens TokenSource
	log    zerolog.Logger
}

func NewCapacityService(gw ports.CapacityGateway, store *state.CapacityStore, tokens TokenSource, log zerolog.Logger) *CapacityService {
	return &CapacityService{gw: gw, store: store, tokens: tokens, log: log}
}

// Fetch replaces the stored report with the server's current computation.
func (s *CapacityService) Fetch(ctx context.Context) ActionResult[*domain.CapacityReport] {
	const action = "capacity_fetch"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		res := failTokenMissing[*domain.CapacityReport](action)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(true)
	report, err := s.gw.Report(ctx, token)
	if err != nil {
		res := fail[*domain.CapacityReport](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetReport(report)
	return ok(action, report)
}
