package entities

import (
	"fmt"
	"strings"
)

// ItemID represents a unique catalog item identifier
type ItemID string

// ItemKind distinguishes the part catalog from the fastener catalog
type ItemKind int

const (
	KindPart ItemKind = iota
	KindFastener
)

// String method for ItemKind enum
func (k ItemKind) String() string {
	switch k {
	case KindPart:
		return "Part"
	case KindFastener:
		return "Fastener"
	default:
		return "Unknown"
	}
}

// ParseItemKind parses an item kind from its string form
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "part":
		return KindPart, nil
	case "fastener":
		return KindFastener, nil
	default:
		return KindPart, fmt.Errorf("invalid item kind: %s (expected: Part or Fastener)", s)
	}
}

// CostPriceSource selects how an item's active cost is resolved when no
// dated history record applies
type CostPriceSource int

const (
	SourceManual CostPriceSource = iota
	SourceSupplierLowest
	SourceProjected
)

// String method for CostPriceSource enum
func (s CostPriceSource) String() string {
	switch s {
	case SourceManual:
		return "Manual"
	case SourceSupplierLowest:
		return "SupplierLowest"
	case SourceProjected:
		return "Projected"
	default:
		return "Unknown"
	}
}

// ParseCostPriceSource parses a cost price source from its string form
func ParseCostPriceSource(s string) (CostPriceSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return SourceManual, nil
	case "supplierlowest":
		return SourceSupplierLowest, nil
	case "projected":
		return SourceProjected, nil
	default:
		return SourceManual, fmt.Errorf(
			"invalid cost_price_source: %s (expected: Manual, SupplierLowest, or Projected)", s)
	}
}

// CatalogItem represents a part or fastener in the catalog. The costing core
// treats catalog entries as read-only; lifecycle management lives in the
// surrounding application.
type CatalogItem struct {
	ID              ItemID
	Description     string
	Kind            ItemKind
	CostPrice       Cents
	CostPriceSource CostPriceSource
	Suppliers       []string
	IsSerialized    bool
}

// NewCatalogItem creates a validated CatalogItem
func NewCatalogItem(
	id ItemID,
	description string,
	kind ItemKind,
	costPrice Cents,
	source CostPriceSource,
	suppliers []string,
	isSerialized bool,
) (*CatalogItem, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	if costPrice < 0 {
		return nil, fmt.Errorf("cost price cannot be negative, got %d", costPrice)
	}

	return &CatalogItem{
		ID:              id,
		Description:     description,
		Kind:            kind,
		CostPrice:       costPrice,
		CostPriceSource: source,
		Suppliers:       suppliers,
		IsSerialized:    isSerialized,
	}, nil
}
