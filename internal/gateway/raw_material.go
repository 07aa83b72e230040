// Package gateway contains the typed wrappers over the inventory API, one
// per remote resource. Gateways fix the endpoint path and method for each
// operation and add no error semantics of their own: transport failures pass
// through unchanged.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// RawMaterialGateway implements ports.RawMaterialGateway.
type RawMaterialGateway struct {
	client Requester
}

func NewRawMaterialGateway(client Requester) *RawMaterialGateway {
	return &RawMaterialGateway{client: client}
}

func (g *RawMaterialGateway) FindAll(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
	q = q.Defaults()
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	params.Set("sort", q.SortBy)
	params.Set("dir", q.Direction)

	var page domain.Page[domain.RawMaterial]
	if err := g.client.Request(ctx, http.MethodGet, "/raw-material?"+params.Encode(), nil, token, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *RawMaterialGateway) Search(ctx context.Context, token, name string) ([]domain.RawMaterial, error) {
	params := url.Values{}
	params.Set("name", name)

	var items []domain.RawMaterial
	if err := g.client.Request(ctx, http.MethodGet, "/raw-material/search?"+params.Encode(), nil, token, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *RawMaterialGateway) FindByID(ctx context.Context, token string, id int64) (*domain.RawMaterial, error) {
	var material domain.RawMaterial
	if err := g.client.Request(ctx, http.MethodGet, fmt.Sprintf("/raw-material/%d", id), nil, token, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (g *RawMaterialGateway) Create(ctx context.Context, token string, in domain.RawMaterialInput) (*domain.RawMaterial, error) {
	var material domain.RawMaterial
	if err := g.client.Request(ctx, http.MethodPost, "/raw-material", in, token, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (g *RawMaterialGateway) Update(ctx context.Context, token string, id int64, in domain.RawMaterialInput) (*domain.RawMaterial, error) {
	var material domain.RawMaterial
	if err := g.client.Request(ctx, http.MethodPut, fmt.Sprintf("/raw-material/%d", id), in, token, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (g *RawMaterialGateway) Delete(ctx context.Context, token string, id int64) error {
	return g.client.Request(ctx, http.MethodDelete, fmt.Sprintf("/raw-material/%d", id), nil, token, nil)
}
