package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/makerops/costing/pkg/domain/entities"
)

func TestBOMRepository_CanonicalShape(t *testing.T) {
	repo := NewBOMRepository()

	bom := &entities.BOM{
		Parts: []entities.BOMEntry{
			{ComponentID: "FRAME_PLATE", Kind: entities.KindPart, QuantityUsed: decimal.NewFromInt(3)},
		},
		Fasteners: []entities.BOMEntry{
			{ComponentID: "BOLT_M6", Kind: entities.KindFastener, QuantityUsed: decimal.NewFromInt(10)},
		},
	}
	if err := repo.LoadBOM("WIDGET", bom); err != nil {
		t.Fatalf("LoadBOM failed: %v", err)
	}

	got, err := repo.GetBOM("WIDGET")
	if err != nil {
		t.Fatalf("GetBOM failed: %v", err)
	}
	if len(got.Parts) != 1 || len(got.Fasteners) != 1 {
		t.Errorf("Expected 1 part and 1 fastener, got %d and %d", len(got.Parts), len(got.Fasteners))
	}
}

func TestBOMRepository_LegacyShapeNormalisation(t *testing.T) {
	repo := NewBOMRepository()

	// Legacy flat list means "parts only", even when entries carry another kind
	entries := []entities.BOMEntry{
		{ComponentID: "FRAME_PLATE", Kind: entities.KindPart, QuantityUsed: decimal.NewFromInt(2)},
		{ComponentID: "BOLT_M6", Kind: entities.KindFastener, QuantityUsed: decimal.NewFromInt(8)},
	}
	if err := repo.LoadLegacyBOM("OLD_WIDGET", entries); err != nil {
		t.Fatalf("LoadLegacyBOM failed: %v", err)
	}

	got, err := repo.GetBOM("OLD_WIDGET")
	if err != nil {
		t.Fatalf("GetBOM failed: %v", err)
	}
	if len(got.Parts) != 2 {
		t.Fatalf("Expected 2 part lines from legacy BOM, got %d", len(got.Parts))
	}
	if len(got.Fasteners) != 0 {
		t.Errorf("Expected no fastener lines from legacy BOM, got %d", len(got.Fasteners))
	}
	for _, entry := range got.Parts {
		if entry.Kind != entities.KindPart {
			t.Errorf("Expected legacy entry %s normalised to part, got %s", entry.ComponentID, entry.Kind)
		}
	}
}

func TestBOMRepository_UnknownProduct(t *testing.T) {
	repo := NewBOMRepository()

	got, err := repo.GetBOM("NO_SUCH_PRODUCT")
	if err != nil {
		t.Fatalf("Expected no error for unknown product, got %v", err)
	}
	if !got.IsEmpty() {
		t.Error("Expected empty BOM for unknown product")
	}
}
