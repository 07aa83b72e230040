package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
)

// RawMaterialService orchestrates the raw-material user intents against the
// gateway and the raw-material container.
type RawMaterialService struct {
	gw       ports.RawMaterialGateway
	store    *state.CollectionStore[domain.RawMaterial]
	tokens   TokenSource
	validate *validator.Validate
	log      zerolog.Logger
}

func NewRawMaterialService(gw ports.RawMaterialGateway, store *state.CollectionStore[domain.RawMaterial], tokens TokenSource, log zerolog.Logger) *RawMaterialService {
	return &RawMaterialService{
		gw:       gw,
		store:    store,
		tokens:   tokens,
		validate: newValidator(),
		log:      log,
	}
}

// FetchList loads one server page into the container, replacing the previous
// page entirely.
func (s *RawMaterialService) FetchList(ctx context.Context, q domain.ListQuery) ActionResult[*domain.Page[domain.RawMaterial]] {
	const action = "raw_material_fetch_list"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		res := failTokenMissing[*domain.Page[domain.RawMaterial]](action)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(true)
	page, err := s.gw.FindAll(ctx, token, q)
	if err != nil {
		return s.failList(action, err)
	}

	s.store.SetPage(page.Content, pagination(page.Page, page.Size, page.TotalElements, page.TotalPages))
	return ok(action, page)
}

// Search runs a server-side name filter. The current rows are cleared before
// the request goes out so stale results never show under the spinner.
func (s *RawMaterialService) Search(ctx context.Context, name string) ActionResult[[]domain.RawMaterial] {
	const action = "raw_material_search"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		res := failTokenMissing[[]domain.RawMaterial](action)
		s.store.SetError(res.Error)
		return res
	}

	s.store.ClearItems()
	s.store.SetLoading(true)

	items, err := s.gw.Search(ctx, token, name)
	if err != nil {
		res := fail[[]domain.RawMaterial](action, err)
		s.store.SetError(res.Error)
		return res
	}

	// The search endpoint returns a bare array; normalize it into a
	// single-page collection so the table renders it like any other page.
	s.store.SetPage(items, state.Pagination{
		Page:          0,
		Size:          sizeOf(len(items)),
		TotalElements: int64(len(items)),
		TotalPages:    1,
	})
	return ok(action, items)
}

// Create submits a new raw material. The container is left untouched on
// success: callers re-invoke FetchList so pagination totals stay
// server-authoritative.
func (s *RawMaterialService) Create(ctx context.Context, in domain.RawMaterialInput) ActionResult[*domain.RawMaterial] {
	const action = "raw_material_create"

	if fields := checkInput(s.validate, in); fields != nil {
		return invalid[*domain.RawMaterial](action, msgInvalidFields, fields)
	}

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.RawMaterial](action)
	}

	s.store.SetLoading(true)
	created, err := s.gw.Create(ctx, token, in)
	if err != nil {
		res := fail[*domain.RawMaterial](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(false)
	return ok(action, created)
}

// Update replaces one raw material wholesale.
func (s *RawMaterialService) Update(ctx context.Context, id int64, in domain.RawMaterialInput) ActionResult[*domain.RawMaterial] {
	const action = "raw_material_update"

	if fields := checkInput(s.validate, in); fields != nil {
		return invalid[*domain.RawMaterial](action, msgInvalidFields, fields)
	}

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.RawMaterial](action)
	}

	s.store.SetLoading(true)
	updated, err := s.gw.Update(ctx, token, id, in)
	if err != nil {
		res := fail[*domain.RawMaterial](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.SetLoading(false)
	return ok(action, updated)
}

// Delete removes one raw material. Totals are not recomputed locally.
func (s *RawMaterialService) Delete(ctx context.Context, id int64) ActionResult[struct{}] {
	const action = "raw_material_delete"

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

// FindByID fetches one raw material and selects it in the container.
func (s *RawMaterialService) FindByID(ctx context.Context, id int64) ActionResult[*domain.RawMaterial] {
	const action = "raw_material_find_by_id"

	token, okTok := s.tokens.Token(ctx)
	if !okTok {
		return failTokenMissing[*domain.RawMaterial](action)
	}

	s.store.SetLoading(true)
	material, err := s.gw.FindByID(ctx, token, id)
	if err != nil {
		res := fail[*domain.RawMaterial](action, err)
		s.store.SetError(res.Error)
		return res
	}

	s.store.Select(material)
	s.store.SetLoading(false)
	return ok(action, material)
}

func (s *RawMaterialService) failList(action string, err error) ActionResult[*domain.Page[domain.RawMaterial]] {
	res := fail[*domain.Page[domain.RawMaterial]](action, err)
	s.store.SetError(res.Error)
	s.log.Debug().Int("status", res.Status).Str("action", action).Msg("action failed")
	return res
}
