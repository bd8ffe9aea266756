package entities

import "testing"

func TestCatalogItem_Validation(t *testing.T) {
	validItem, err := NewCatalogItem(
		"FRAME_PLATE",
		"Frame Plate",
		KindPart,
		Cents(500),
		SourceManual,
		nil,
		false,
	)
	if err != nil {
		t.Fatalf("Expected valid item creation to succeed: %v", err)
	}
	if validItem.ID != "FRAME_PLATE" {
		t.Errorf("Expected item id FRAME_PLATE, got %s", validItem.ID)
	}

	testCases := []struct {
		name        string
		id          ItemID
		costPrice   Cents
		expectError string
	}{
		{"empty item id", "", 100, "item id cannot be empty"},
		{"negative cost price", "FRAME_PLATE", -1, "cost price cannot be negative, got -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalogItem(tc.id, "desc", KindPart, tc.costPrice, SourceManual, nil, false)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestParseCostPriceSource(t *testing.T) {
	testCases := []struct {
		input    string
		expected CostPriceSource
		wantErr  bool
	}{
		{"Manual", SourceManual, false},
		{"manual", SourceManual, false},
		{"SupplierLowest", SourceSupplierLowest, false},
		{"supplierlowest", SourceSupplierLowest, false},
		{"Projected", SourceProjected, false},
		{" projected ", SourceProjected, false},
		{"lowest", SourceManual, true},
		{"", SourceManual, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCostPriceSource(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error for input %q, but got none", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for input %q: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("Expected %v for input %q, got %v", tc.expected, tc.input, got)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if SourceProjected.String() != "Projected" {
		t.Errorf("Expected Projected, got %s", SourceProjected.String())
	}
	if KindFastener.String() != "Fastener" {
		t.Errorf("Expected Fastener, got %s", KindFastener.String())
	}
	if LineLabour.String() != "Labour" {
		t.Errorf("Expected Labour, got %s", LineLabour.String())
	}
	if CostPriceSource(99).String() != "Unknown" {
		t.Errorf("Expected Unknown for out-of-range source, got %s", CostPriceSource(99).String())
	}
}

func TestCents_String(t *testing.T) {
	testCases := []struct {
		value    Cents
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1100, "11.00"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}

	for _, tc := range testCases {
		if got := tc.value.String(); got != tc.expected {
			t.Errorf("Expected %s for %d cents, got %s", tc.expected, int64(tc.value), got)
		}
	}
}
