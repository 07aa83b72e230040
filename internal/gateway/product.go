package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// ProductGateway implements ports.ProductGateway.
type ProductGateway struct {
	client Requester
}

func NewProductGateway(client Requester) *ProductGateway {
	return &ProductGateway{client: client}
}

func (g *ProductGateway) FindAll(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.Product], error) {
	q = q.Defaults()
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	params.Set("sort", q.SortBy)
	params.Set("dir", q.Direction)

	var page domain.Page[domain.Product]
	if err := g.client.Request(ctx, http.MethodGet, "/products?"+params.Encode(), nil, token, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search filters server-side through the name query parameter on the list
// endpoint.
func (g *ProductGateway) Search(ctx context.Context, token, name string) (*domain.Page[domain.Product], error) {
	params := url.Values{}
	params.Set("name", name)

	var page domain.Page[domain.Product]
	if err := g.client.Request(ctx, http.MethodGet, "/products?"+params.Encode(), nil, token, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *ProductGateway) FindByID(ctx context.Context, token string, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Request(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, token, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) Create(ctx context.Context, token string, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Request(ctx, http.MethodPost, "/products", in, token, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) Update(ctx context.Context, token string, id int64, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Request(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), in, token, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) Delete(ctx context.Context, token string, id int64) error {
	return g.client.Request(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, token, nil)
}
