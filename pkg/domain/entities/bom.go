package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BOMEntry represents a single component line in a product's bill of
// materials. QuantityUsed is a positive rational: fractional usage (e.g.
// 0.5 m of stock) is valid.
type BOMEntry struct {
	ComponentID  ItemID
	Kind         ItemKind
	QuantityUsed decimal.Decimal
}

// NewBOMEntry creates a validated BOMEntry
func NewBOMEntry(componentID ItemID, kind ItemKind, quantityUsed decimal.Decimal) (*BOMEntry, error) {
	if string(componentID) == "" {
		return nil, fmt.Errorf("component id cannot be empty")
	}
	if !quantityUsed.IsPositive() {
		return nil, fmt.Errorf("quantity used must be positive, got %s", quantityUsed)
	}

	return &BOMEntry{
		ComponentID:  componentID,
		Kind:         kind,
		QuantityUsed: quantityUsed,
	}, nil
}

// BOM is the canonical bill-of-materials shape: part lines and fastener
// lines. Stores that persist the legacy flat "parts only" shape normalise it
// into this form before it reaches the costing core.
type BOM struct {
	Parts     []BOMEntry
	Fasteners []BOMEntry
}

// IsEmpty reports whether the BOM has no component lines at all
func (b *BOM) IsEmpty() bool {
	return len(b.Parts) == 0 && len(b.Fasteners) == 0
}
