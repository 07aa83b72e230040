package state

import "github.com/naiconmartins/autoflex-production-control/internal/core/domain"

// Stores is the composition root's container set, created once at process
// start. Tests build a fresh set per run instead of sharing a global.
type Stores struct {
	RawMaterials *CollectionStore[domain.RawMaterial]
	Products     *CollectionStore[domain.Product]
	Capacity     *CapacityStore
	Session      *SessionStore
}

func NewStores() *Stores {
	return &Stores{
		RawMaterials: NewCollectionStore[domain.RawMaterial](),
		Products:     NewCollectionStore[domain.Product](),
		Capacity:     NewCapacityStore(),
		Session:      NewSessionStore(),
	}
}
