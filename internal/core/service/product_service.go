package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
)

// ProductService orchestrates the product user intents. Products carry a
// bill of materials, so create and update enforce two invariants before any
// network call: at least one raw-material line, and no raw material
// referenced twice.
type ProductService struct {
	gw       ports.ProductGateway
	store    *state.CollectionStore[domain.Product]
	tokens   TokenSource
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProductService(gw ports.ProductGateway, store *state.CollectionStore[domain.Product], tokens TokenSource, log zerolog.Logger) *ProductService {
	return &ProductService{
		gw:       gw,
		store:    store,
		tokens:   tokens,
		validate: newValidator(),
		log:      log,
	}
}

func (s *ProductService) FetchList(ctx context.Context, q domain.ListQuery) ActionResult[*domain.Page[domain.Product]] {
	const action = "product_fetch_list"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		res := failTokenMissing[*domain.Page[domain.Product]](action)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(true)
	page, err := s.gw.FindAll(ctx, token, q)
	if err != nil {
		res := fail[*domain.Page[domain.Product]](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetPage(page.Content, pagination(page.Page, page.Size, page.TotalElements, page.TotalPages))
	return ok(action, page)
}

// Search filters products server-side by name. Rows are cleared up front so
// a slow response never renders behind a newer filter.
func (s *ProductService) Search(ctx context.Context, name string) ActionResult[*domain.Page[domain.Product]] {
	const action = "product_search"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		res := failTokenMissing[*domain.Page[domain.Product]](action)
		s.store.SetError(res.Error)
		return res
	}

	s.store.ClearItems()
	s.store.SetLoading(true)

	page, err := s.gw.Search(ctx, token, name)
	if err != nil {
		res := fail[*domain.Page[domain.Product]](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetPage(page.Content, pagination(page.Page, page.Size, page.TotalElements, page.TotalPages))
	return ok(action, page)
}

func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) ActionResult[*domain.Product] {
	const action = "product_create"

	if res, rejected := s.checkProduct(action, in); rejected {
		return res
	}

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.Product](action)
	}

	s.store.SetLoading(true)
	created, err := s.gw.Create(ctx, token, in)
	if err != nil {
		res := fail[*domain.Product](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(false)
	return ok(action, created)
}

func (s *ProductService) Update(ctx context.Context, id int64, in domain.ProductInput) ActionResult[*domain.Product] {
	const action = "product_update"

	if res, rejected := s.checkProduct(action, in); rejected {
		return res
	}

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.Product](action)
	}

	s.store.SetLoading(true)
	updated, err := s.gw.Update(ctx, token, id, in)
	if err != nil {
		res := fail[*domain.Product](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(false)
	return ok(action, updated)
}

func (s *ProductService) Delete(ctx context.Context, id int64) ActionResult[struct{}] {
	const action = "product_delete"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[struct{}](action)
	}

	s.store.SetLoading(true)
	if err := s.gw.Delete(ctx, token, id); err != nil {
		res := fail[struct{}](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(false)
	return ok(action, struct{}{})
}

func (s *ProductService) FindByID(ctx context.Context, id int64) ActionResult[*domain.Product] {
	const action = "product_find_by_id"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.Product](action)
	}

	s.store.SetLoading(true)
	product, err := s.gw.FindByID(ctx, token, id)
	if err != nil {
		res := fail[*domain.Product](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.Select(product)
	s.store.SetLoading(false)
	return ok(action, product)
}

// checkProduct runs the client-side invariants. The empty bill-of-materials
// case gets its dedicated message; everything else reports per-field.
func (s *ProductService) checkProduct(action string, in domain.ProductInput) (ActionResult[*domain.Product], bool) {
	if len(in.RawMaterials) == 0 {
		msg := domain.ErrNoRawMaterials.Error()
		return invalid[*domain.Product](action, msg, map[string][]string{"rawMaterials": {msg}}), true
	}
	if dup := in.DuplicateLine(); dup != 0 {
		msg := fmt.Sprintf("raw material %d is referenced more than once", dup)
		return invalid[*domain.Product](action, msgInvalidFields, map[string][]string{"rawMaterials": {msg}}), true
	}
	if fields := checkInput(s.validate, in); fields != nil {
		return invalid[*domain.Product](action, msgInvalidFields, fields), true
	}
	return ActionResult[*domain.Product]{}, false
}
