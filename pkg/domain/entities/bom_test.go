package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBOMEntry_Validation(t *testing.T) {
	validEntry, err := NewBOMEntry("FRAME_PLATE", KindPart, decimal.NewFromInt(3))
	if err != nil {
		t.Fatalf("Expected valid BOM entry creation to succeed: %v", err)
	}
	if validEntry.ComponentID != "FRAME_PLATE" {
		t.Errorf("Expected component id FRAME_PLATE, got %s", validEntry.ComponentID)
	}

	fractional, err := NewBOMEntry("WIRE_LOOM", KindPart, decimal.RequireFromString("0.25"))
	if err != nil {
		t.Fatalf("Expected fractional quantity to be accepted: %v", err)
	}
	if !fractional.QuantityUsed.Equal(decimal.RequireFromString("0.25")) {
		t.Errorf("Expected quantity 0.25, got %s", fractional.QuantityUsed)
	}

	testCases := []struct {
		name        string
		componentID ItemID
		kind        ItemKind
		quantity    decimal.Decimal
		expectError string
	}{
		{"empty component id", "", KindPart, decimal.NewFromInt(1), "component id cannot be empty"},
		{"zero quantity", "FRAME_PLATE", KindPart, decimal.Zero, "quantity used must be positive, got 0"},
		{
			"negative quantity",
			"BOLT_M6",
			KindFastener,
			decimal.NewFromInt(-2),
			"quantity used must be positive, got -2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBOMEntry(tc.componentID, tc.kind, tc.quantity)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestBOM_IsEmpty(t *testing.T) {
	empty := &BOM{}
	if !empty.IsEmpty() {
		t.Error("Expected BOM with no lines to be empty")
	}

	withPart := &BOM{Parts: []BOMEntry{{ComponentID: "FRAME_PLATE", Kind: KindPart, QuantityUsed: decimal.NewFromInt(1)}}}
	if withPart.IsEmpty() {
		t.Error("Expected BOM with a part line to be non-empty")
	}

	withFastener := &BOM{Fasteners: []BOMEntry{{ComponentID: "BOLT_M6", Kind: KindFastener, QuantityUsed: decimal.NewFromInt(4)}}}
	if withFastener.IsEmpty() {
		t.Error("Expected BOM with a fastener line to be non-empty")
	}
}
