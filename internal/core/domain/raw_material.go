package domain

import "errors"

var ErrRawMaterialNotFound = errors.New("raw material not found")
var ErrDuplicateCode = errors.New("code already exists")

// RawMaterial is a stock item products are built from. Code is a unique
// human-readable identifier; uniqueness is enforced by the inventory API and
// a conflict surfaces as a 409.
type RawMaterial struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	StockQuantity float64 `json:"stockQuantity"`
}

// RawMaterialInput is the payload for create and update calls.
// Zero stock is valid: it means the material is currently unavailable.
type RawMaterialInput struct {
	Code          string  `json:"code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	StockQuantity float64 `json:"stockQuantity" validate:"gte=0"`
}
