package services

import (
	"fmt"

	"github.com/makerops/costing/pkg/domain/entities"
)

// BOMValidator provides validation of BOM structure against catalog master data
type BOMValidator struct{}

// NewBOMValidator creates a new BOM validator
func NewBOMValidator() *BOMValidator {
	return &BOMValidator{}
}

// ValidationResult contains the results of BOM validation
type ValidationResult struct {
	UnknownComponents []entities.ItemID
	KindMismatches    []entities.ItemID
	DuplicateLines    []entities.ItemID
	Errors            []string
}

// ValidateBOMCatalogConsistency checks every BOM line against the catalog:
// components should exist, part lines should reference part items and
// fastener lines fastener items, and no component should appear twice in
// the same section of one product's BOM. Unknown components are reported
// but the costing core still tolerates them (they resolve to a zero cost).
func (v *BOMValidator) ValidateBOMCatalogConsistency(
	boms map[entities.ItemID]*entities.BOM,
	items []*entities.CatalogItem,
) *ValidationResult {
	result := &ValidationResult{
		UnknownComponents: make([]entities.ItemID, 0),
		KindMismatches:    make([]entities.ItemID, 0),
		DuplicateLines:    make([]entities.ItemID, 0),
		Errors:            make([]string, 0),
	}

	catalog := make(map[entities.ItemID]*entities.CatalogItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}

	for productID, bom := range boms {
		v.validateSection(productID, bom.Parts, entities.KindPart, catalog, result)
		v.validateSection(productID, bom.Fasteners, entities.KindFastener, catalog, result)
	}

	return result
}

func (v *BOMValidator) validateSection(
	productID entities.ItemID,
	entries []entities.BOMEntry,
	expectedKind entities.ItemKind,
	catalog map[entities.ItemID]*entities.CatalogItem,
	result *ValidationResult,
) {
	seen := make(map[entities.ItemID]bool, len(entries))

	for _, entry := range entries {
		if seen[entry.ComponentID] {
			result.DuplicateLines = append(result.DuplicateLines, entry.ComponentID)
			result.Errors = append(result.Errors, fmt.Sprintf(
				"product %s: component %s appears more than once in its %s lines",
				productID, entry.ComponentID, expectedKind))
		}
		seen[entry.ComponentID] = true

		item, exists := catalog[entry.ComponentID]
		if !exists {
			result.UnknownComponents = append(result.UnknownComponents, entry.ComponentID)
			continue
		}

		if item.Kind != expectedKind {
			result.KindMismatches = append(result.KindMismatches, entry.ComponentID)
			result.Errors = append(result.Errors, fmt.Sprintf(
				"product %s: component %s is a %s but appears in the %s lines",
				productID, entry.ComponentID, item.Kind, expectedKind))
		}
	}
}
