package gateway

import (
	"context"
	"net/http"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// CapacityGateway implements ports.CapacityGateway.
type CapacityGateway struct {
	client Requester
}

func NewCapacityGateway(client Requester) *CapacityGateway {
	return &CapacityGateway{client: client}
}

func (g *CapacityGateway) Report(ctx context.Context, token string) (*domain.CapacityReport, error) {
	var report domain.CapacityReport
	if err := g.client.Request(ctx, http.MethodGet, "/production-capacity", nil, token, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
