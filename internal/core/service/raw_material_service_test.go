package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
	"github.com/naiconmartins/autoflex-production-control/internal/transport"
)

type stubRawMaterialGateway struct {
	findAllFn  func(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error)
	searchFn   func(ctx context.Context, token, name string) ([]domain.RawMaterial, error)
	findByIDFn func(ctx context.Context, token string, id int64) (*domain.RawMaterial, error)
	createFn   func(ctx context.Context, token string, in domain.RawMaterialInput) (*domain.RawMaterial, error)
	updateFn   func(ctx context.Context, token string, id int64, in domain.RawMaterialInput) (*domain.RawMaterial, error)
	deleteFn   func(ctx context.Context, token string, id int64) error
}

func (s *stubRawMaterialGateway) FindAll(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
	return s.findAllFn(ctx, token, q)
}

func (s *stubRawMaterialGateway) Search(ctx context.Context, token, name string) ([]domain.RawMaterial, error) {
	return s.searchFn(ctx, token, name)
}

func (s *stubRawMaterialGateway) FindByID(ctx context.Context, token string, id int64) (*domain.RawMaterial, error) {
	return s.findByIDFn(ctx, token, id)
}

func (s *stubRawMaterialGateway) Create(ctx context.Context, token string, in domain.RawMaterialInput) (*domain.RawMaterial, error) {
	return s.createFn(ctx, token, in)
}

func (s *stubRawMaterialGateway) Update(ctx context.Context, token string, id int64, in domain.RawMaterialInput) (*domain.RawMaterial, error) {
	return s.updateFn(ctx, token, id, in)
}

func (s *stubRawMaterialGateway) Delete(ctx context.Context, token string, id int64) error {
	return s.deleteFn(ctx, token, id)
}

func newRawMaterialFixture(gw *stubRawMaterialGateway) (*RawMaterialService, *state.CollectionStore[domain.RawMaterial]) {
	store := state.NewCollectionStore[domain.RawMaterial]()
	svc := NewRawMaterialService(gw, store, StaticTokenSource("tok-1"), zerolog.Nop())
	return svc, store
}

func TestRawMaterialService_FetchList_Success(t *testing.T) {
	page := &domain.Page[domain.RawMaterial]{
		Content:       []domain.RawMaterial{{ID: 1, Code: "MAD-001", Name: "oak", StockQuantity: 12}},
		Page:          0,
		Size:          10,
		TotalElements: 1,
		TotalPages:    1,
	}
	gw := &stubRawMaterialGateway{
		findAllFn: func(_ context.Context, token string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
			if token != "tok-1" {
				t.Fatalf("unexpected token %q", token)
			}
			if q.Size != 10 || q.SortBy != "name" || q.Direction != "asc" {
				t.Fatalf("defaults not applied: %+v", q)
			}
			return page, nil
		},
	}
	svc, store := newRawMaterialFixture(gw)

	res := svc.FetchList(context.Background(), domain.ListQuery{})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}

	snap := store.Snapshot()
	if snap.Phase() != state.PhaseReady {
		t.Fatalf("expected ready container, got %s", snap.Phase())
	}
	if len(snap.Items) != 1 || snap.Items[0].Code != "MAD-001" {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
	if snap.Pagination.TotalElements != 1 {
		t.Fatalf("unexpected totals: %+v", snap.Pagination)
	}
}

func TestRawMaterialService_FetchList_PaginationReplaces(t *testing.T) {
	pages := map[int]*domain.Page[domain.RawMaterial]{
		0: {Content: []domain.RawMaterial{{ID: 1}, {ID: 2}}, Page: 0, Size: 2, TotalElements: 4, TotalPages: 2},
		1: {Content: []domain.RawMaterial{{ID: 3}, {ID: 4}}, Page: 1, Size: 2, TotalElements: 4, TotalPages: 2},
	}
	gw := &stubRawMaterialGateway{
		findAllFn: func(_ context.Context, _ string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
			return pages[q.Page], nil
		},
	}
	svc, store := newRawMaterialFixture(gw)

	svc.FetchList(context.Background(), domain.ListQuery{Page: 0, Size: 2})
	svc.FetchList(context.Background(), domain.ListQuery{Page: 1, Size: 2})

	snap := store.Snapshot()
	if snap.Pagination.Page != 1 {
		t.Fatalf("expected page 1, got %d", snap.Pagination.Page)
	}
	if len(snap.Items) != 2 || snap.Items[0].ID != 3 {
		t.Fatalf("page 1 must replace page 0 entirely: %+v", snap.Items)
	}
}

func TestRawMaterialService_FetchList_Idempotent(t *testing.T) {
	gw := &stubRawMaterialGateway{
		findAllFn: func(_ context.Context, _ string, _ domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
			return &domain.Page[domain.RawMaterial]{
				Content:       []domain.RawMaterial{{ID: 1, Code: "MAD-001"}},
				Size:          10,
				TotalElements: 1,
				TotalPages:    1,
			}, nil
		},
	}
	svc, store := newRawMaterialFixture(gw)

	svc.FetchList(context.Background(), domain.ListQuery{})
	first := store.Snapshot()
	svc.FetchList(context.Background(), domain.ListQuery{})
	second := store.Snapshot()

	if len(first.Items) != len(second.Items) ||
		first.Pagination != second.Pagination ||
		first.Items[0] != second.Items[0] {
		t.Fatalf("re-fetch without mutation must be identical:\n%+v\n%+v", first, second)
	}
}

func TestRawMaterialService_FetchList_TokenMissing(t *testing.T) {
	gw := &stubRawMaterialGateway{
		findAllFn: func(context.Context, string, domain.ListQuery) (*domain.Page[domain.RawMaterial], error) {
			t.Fatalf("gateway must not be called without a token")
			return nil, nil
		},
	}
	store := state.NewCollectionStore[domain.RawMaterial]()
	svc := NewRawMaterialService(gw, store, StaticTokenSource(""), zerolog.Nop())

	res := svc.FetchList(context.Background(), domain.ListQuery{})
	if res.Success || res.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 result, got %+v", res)
	}
	if res.Error != "Token not found. Please login again." {
		t.Fatalf("unexpected message: %q", res.Error)
	}
}

func TestRawMaterialService_Create_Conflict(t *testing.T) {
	gw := &stubRawMaterialGateway{
		createFn: func(context.Context, string, domain.RawMaterialInput) (*domain.RawMaterial, error) {
			return nil, &transport.APIError{Status: http.StatusConflict, Message: "duplicate code"}
		},
	}
	svc, store := newRawMaterialFixture(gw)
	store.SetPage([]domain.RawMaterial{{ID: 1, Code: "MAD-001"}}, state.Pagination{Size: 10, TotalElements: 1, TotalPages: 1})

	res := svc.Create(context.Background(), domain.RawMaterialInput{Code: "MAD-001", Name: "oak", StockQuantity: 3})
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", res.Status)
	}
	if res.Error != "This resource already exists." {
		t.Fatalf("unexpected message: %q", res.Error)
	}

	snap := store.Snapshot()
	if len(snap.Items) != 1 || snap.Pagination.TotalElements != 1 {
		t.Fatalf("failed create must leave the container unchanged: %+v", snap)
	}
	if snap.Error != "This resource already exists." {
		t.Fatalf("container must carry the mapped error: %q", snap.Error)
	}
}

func TestRawMaterialService_Create_ZeroStockAllowed(t *testing.T) {
	var got domain.RawMaterialInput
	gw := &stubRawMaterialGateway{
		createFn: func(_ context.Context, _ string, in domain.RawMaterialInput) (*domain.RawMaterial, error) {
			got = in
			return &domain.RawMaterial{ID: 2, Code: in.Code, Name: in.Name, StockQuantity: in.StockQuantity}, nil
		},
	}
	svc, _ := newRawMaterialFixture(gw)

	res := svc.Create(context.Background(), domain.RawMaterialInput{Code: "MAD-002", Name: "pine", StockQuantity: 0})
	if !res.Success {
		t.Fatalf("zero stock is a valid, just unavailable, state: %+v", res)
	}
	if got.StockQuantity != 0 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestRawMaterialService_Create_NegativeStockRejected(t *testing.T) {
	gw := &stubRawMaterialGateway{
		createFn: func(context.Context, string, domain.RawMaterialInput) (*domain.RawMaterial, error) {
			t.Fatalf("invalid input must never reach the network")
			return nil, nil
		},
	}
	svc, _ := newRawMaterialFixture(gw)

	res := svc.Create(context.Background(), domain.RawMaterialInput{Code: "MAD-003", Name: "ash", StockQuantity: -1})
	if res.Success || res.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 result, got %+v", res)
	}
	if len(res.FieldErrors["stockQuantity"]) == 0 {
		t.Fatalf("expected a stockQuantity field error: %+v", res.FieldErrors)
	}
}

func TestRawMaterialService_Create_RequiredFields(t *testing.T) {
	gw := &stubRawMaterialGateway{}
	svc, _ := newRawMaterialFixture(gw)

	res := svc.Create(context.Background(), domain.RawMaterialInput{})
	if res.Success {
		t.Fatalf("expected rejection")
	}
	for _, field := range []string{"code", "name"} {
		if len(res.FieldErrors[field]) == 0 {
			t.Fatalf("expected %s error, got %+v", field, res.FieldErrors)
		}
	}
}

func TestRawMaterialService_Search_ClearsThenNormalizes(t *testing.T) {
	cleared := false
	gw := &stubRawMaterialGateway{
		searchFn: func(_ context.Context, _ string, name string) ([]domain.RawMaterial, error) {
			if name != "oak" {
				t.Fatalf("unexpected query %q", name)
			}
			return []domain.RawMaterial{{ID: 1, Name: "oak"}, {ID: 4, Name: "red oak"}}, nil
		},
	}
	svc, store := newRawMaterialFixture(gw)
	store.SetPage([]domain.RawMaterial{{ID: 9, Name: "stale"}}, state.Pagination{Size: 10, TotalElements: 1, TotalPages: 1})

	// Observe the clear via a snapshot taken inside the gateway call.
	gw.searchFn = func(_ context.Context, _ string, name string) ([]domain.RawMaterial, error) {
		if len(store.Snapshot().Items) != 0 {
			t.Fatalf("stale rows must be cleared before the request is issued")
		}
		cleared = true
		return []domain.RawMaterial{{ID: 1, Name: "oak"}, {ID: 4, Name: "red oak"}}, nil
	}

	res := svc.Search(context.Background(), "oak")
	if !res.Success || !cleared {
		t.Fatalf("expected successful search after clear, got %+v", res)
	}

	snap := store.Snapshot()
	if len(snap.Items) != 2 {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
	if snap.Pagination.TotalElements != 2 || snap.Pagination.TotalPages != 1 || snap.Pagination.Page != 0 {
		t.Fatalf("array response must normalize into one page: %+v", snap.Pagination)
	}
}

func TestRawMaterialService_Delete_NetworkFailure(t *testing.T) {
	gw := &stubRawMaterialGateway{
		deleteFn: func(context.Context, string, int64) error {
			return &transport.APIError{Status: 0, Message: "connection refused"}
		},
	}
	svc, store := newRawMaterialFixture(gw)

	res := svc.Delete(context.Background(), 1)
	if res.Success || res.Status != 0 {
		t.Fatalf("expected status-0 failure, got %+v", res)
	}
	want := "The service is temporarily unavailable. Please try again later."
	if res.Error != want || store.Snapshot().Error != want {
		t.Fatalf("unexpected message: %q / %q", res.Error, store.Snapshot().Error)
	}
}

func TestRawMaterialService_FindByID_Selects(t *testing.T) {
	gw := &stubRawMaterialGateway{
		findByIDFn: func(_ context.Context, _ string, id int64) (*domain.RawMaterial, error) {
			return &domain.RawMaterial{ID: id, Code: "MAD-007"}, nil
		},
	}
	svc, store := newRawMaterialFixture(gw)

	res := svc.FindByID(context.Background(), 7)
	if !res.Success || res.Data.ID != 7 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if sel := store.Snapshot().Selected; sel == nil || sel.Code != "MAD-007" {
		t.Fatalf("expected selection in container, got %+v", sel)
	}
}
