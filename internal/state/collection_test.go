package state

import (
	"testing"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

func TestCollectionStore_Lifecycle(t *testing.T) {
	s := NewCollectionStore[domain.RawMaterial]()

	if phase := s.Snapshot().Phase(); phase != PhaseIdle {
		t.Fatalf("fresh store must be idle, got %s", phase)
	}

	s.SetLoading(true)
	if phase := s.Snapshot().Phase(); phase != PhaseLoading {
		t.Fatalf("expected loading, got %s", phase)
	}

	s.SetPage([]domain.RawMaterial{{ID: 1, Code: "MAD-001"}}, Pagination{Page: 0, Size: 10, TotalElements: 1, TotalPages: 1})
	snap := s.Snapshot()
	if snap.Phase() != PhaseReady {
		t.Fatalf("expected ready, got %s", snap.Phase())
	}
	if !snap.Hydrated || snap.Loading || snap.Error != "" {
		t.Fatalf("unexpected flags: %+v", snap)
	}
	if len(snap.Items) != 1 || snap.Items[0].Code != "MAD-001" {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}

	s.SetLoading(true)
	s.SetError("boom")
	snap = s.Snapshot()
	if snap.Phase() != PhaseErrored || snap.Loading {
		t.Fatalf("error must settle the store: %+v", snap)
	}
	// Items of the last good page stay visible next to the error.
	if len(snap.Items) != 1 {
		t.Fatalf("error must not drop the last page: %+v", snap.Items)
	}

	s.Clear()
	snap = s.Snapshot()
	if snap.Phase() != PhaseIdle || len(snap.Items) != 0 || snap.Pagination.Size != 10 {
		t.Fatalf("clear must reset to initial state: %+v", snap)
	}
}

func TestCollectionStore_SetPageReplacesWholesale(t *testing.T) {
	s := NewCollectionStore[domain.RawMaterial]()
	s.SetPage([]domain.RawMaterial{{ID: 1}, {ID: 2}}, Pagination{Page: 0, Size: 2, TotalElements: 4, TotalPages: 2})
	s.SetPage([]domain.RawMaterial{{ID: 3}, {ID: 4}}, Pagination{Page: 1, Size: 2, TotalElements: 4, TotalPages: 2})

	snap := s.Snapshot()
	if snap.Pagination.Page != 1 {
		t.Fatalf("expected page 1, got %d", snap.Pagination.Page)
	}
	if len(snap.Items) != 2 || snap.Items[0].ID != 3 || snap.Items[1].ID != 4 {
		t.Fatalf("page 0 content must be discarded, not merged: %+v", snap.Items)
	}
}

func TestCollectionStore_ClearItemsKeepsHydration(t *testing.T) {
	s := NewCollectionStore[domain.Product]()
	s.SetPage([]domain.Product{{ID: 9}}, Pagination{Size: 10, TotalElements: 1, TotalPages: 1})

	s.ClearItems()
	snap := s.Snapshot()
	if len(snap.Items) != 0 {
		t.Fatalf("items must be empty after ClearItems")
	}
	if !snap.Hydrated {
		t.Fatalf("ClearItems must not reset hydration")
	}
}

func TestCollectionStore_SnapshotIsolation(t *testing.T) {
	s := NewCollectionStore[domain.RawMaterial]()
	s.SetPage([]domain.RawMaterial{{ID: 1, Name: "oak"}}, Pagination{Size: 10})

	snap := s.Snapshot()
	snap.Items[0].Name = "mutated"

	if s.Snapshot().Items[0].Name != "oak" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}

func TestCollectionStore_Select(t *testing.T) {
	s := NewCollectionStore[domain.Product]()
	item := domain.Product{ID: 5, Code: "PRD-005"}

	s.Select(&item)
	snap := s.Snapshot()
	if snap.Selected == nil || snap.Selected.ID != 5 {
		t.Fatalf("expected selected item, got %+v", snap.Selected)
	}

	item.Code = "changed"
	if s.Snapshot().Selected.Code != "PRD-005" {
		t.Fatalf("selection must be a copy")
	}

	s.Select(nil)
	if s.Snapshot().Selected != nil {
		t.Fatalf("expected selection cleared")
	}
}
