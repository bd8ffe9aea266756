package memory

import (
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// BOMRepository provides in-memory BOM storage. Legacy flat part-only lists
// are normalised into the canonical {Parts, Fasteners} shape at load time so
// the costing core never sees the legacy shape.
type BOMRepository struct {
	boms map[entities.ItemID]*entities.BOM
}

// NewBOMRepository creates a new in-memory BOM repository
func NewBOMRepository() *BOMRepository {
	return &BOMRepository{
		boms: make(map[entities.ItemID]*entities.BOM),
	}
}

// Verify interface compliance
var _ repositories.BOMRepository = (*BOMRepository)(nil)

// LoadBOM stores a product's BOM in canonical shape
func (r *BOMRepository) LoadBOM(productID entities.ItemID, bom *entities.BOM) error {
	r.boms[productID] = bom
	return nil
}

// LoadLegacyBOM stores a legacy flat entry list, which means "parts only".
// Entries are normalised to part lines regardless of their declared kind.
func (r *BOMRepository) LoadLegacyBOM(productID entities.ItemID, entries []entities.BOMEntry) error {
	bom := &entities.BOM{Parts: make([]entities.BOMEntry, 0, len(entries))}
	for _, entry := range entries {
		entry.Kind = entities.KindPart
		bom.Parts = append(bom.Parts, entry)
	}
	r.boms[productID] = bom
	return nil
}

// GetBOM returns a product's BOM in canonical shape. Unknown products yield
// an empty BOM, not an error.
func (r *BOMRepository) GetBOM(productID entities.ItemID) (*entities.BOM, error) {
	if bom, exists := r.boms[productID]; exists {
		return bom, nil
	}
	return &entities.BOM{}, nil
}
