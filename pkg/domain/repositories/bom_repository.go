package repositories

import "github.com/makerops/costing/pkg/domain/entities"

// BOMRepository provides access to product bills of materials
type BOMRepository interface {
	// GetBOM always returns the canonical {Parts, Fasteners} shape.
	// Implementations that persist the legacy flat part-only shape normalise
	// it here, before it reaches the costing core. Unknown products yield an
	// empty BOM, not an error.
	GetBOM(productID entities.ItemID) (*entities.BOM, error)
	LoadBOM(productID entities.ItemID, bom *entities.BOM) error
}
