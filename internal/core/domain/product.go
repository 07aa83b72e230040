package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// ErrNoRawMaterials rejects a product with an empty bill of materials before
// any network call is made.
var ErrNoRawMaterials = errors.New("The product must contain at least one raw material.")

// Product is a sellable item composed of raw materials.
type Product struct {
	ID           int64             `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Price        float64           `json:"price"`
	RawMaterials []RawMaterialLine `json:"rawMaterials"`
}

// RawMaterialLine is one bill-of-materials edge: the referenced raw material
// and how many units of it one product unit consumes. A product must not
// reference the same raw material twice.
type RawMaterialLine struct {
	ID               int64   `json:"id" validate:"gt=0"`
	RequiredQuantity float64 `json:"requiredQuantity" validate:"gt=0"`
}

// ProductInput is the payload for create and update calls.
type ProductInput struct {
	Code         string            `json:"code" validate:"required"`
	Name         string            `json:"name" validate:"required"`
	Price        float64           `json:"price" validate:"gt=0"`
	RawMaterials []RawMaterialLine `json:"rawMaterials" validate:"min=1,dive"`
}

// DuplicateLine returns the id of the first raw material referenced more than
// once, or 0 when all lines are distinct.
func (p ProductInput) DuplicateLine() int64 {
	seen := make(map[int64]struct{}, len(p.RawMaterials))
	for _, line := range p.RawMaterials {
		if _, ok := seen[line.ID]; ok {
			return line.ID
		}
		seen[line.ID] = struct{}{}
	}
	return 0
}
