package costing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	testhelpers "github.com/makerops/costing/pkg/application/services/testing"
	"github.com/makerops/costing/pkg/domain/entities"
)

func newTestResolver(stores *testhelpers.Stores) *CostResolver {
	return NewCostResolver(stores.History, stores.Catalog, stores.Supplier, nil)
}

func TestPartCostAtDate_HistoryWins(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)
	ctx := context.Background()

	// STEEL_ROD has a manual catalog price of 900, but its dated history
	// must win whenever a record qualifies
	tests := []struct {
		name     string
		date     time.Time
		expected entities.Cents
	}{
		{"mid history", date(2025, 2, 15), 1100},
		{"exact record date", date(2025, 2, 1), 1100},
		{"past last record holds last value", date(2025, 4, 1), 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := resolver.PartCostAtDate(ctx, "STEEL_ROD", tt.date)
			if err != nil {
				t.Fatalf("PartCostAtDate failed: %v", err)
			}
			if cost != tt.expected {
				t.Errorf("Expected cost %d, got %d", tt.expected, cost)
			}
		})
	}
}

func TestPartCostAtDate_ManualDefault(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)

	cost, err := resolver.PartCostAtDate(context.Background(), "FRAME_PLATE", date(2025, 6, 1))
	if err != nil {
		t.Fatalf("PartCostAtDate failed: %v", err)
	}
	if cost != 500 {
		t.Errorf("Expected manual catalog price 500, got %d", cost)
	}
}

func TestPartCostAtDate_SupplierLowest(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)

	// BEARING_608 has no history; Bolt&Co quotes 380, Acme 420
	cost, err := resolver.PartCostAtDate(context.Background(), "BEARING_608", date(2025, 6, 1))
	if err != nil {
		t.Fatalf("PartCostAtDate failed: %v", err)
	}
	if cost != 380 {
		t.Errorf("Expected lowest supplier quote 380, got %d", cost)
	}
}

func TestPartCostAtDate_SupplierFallsBackToManual(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)

	// Before any quote's effective date the supplier lookup misses and the
	// manual catalog price (450) takes over
	cost, err := resolver.PartCostAtDate(context.Background(), "BEARING_608", date(2024, 6, 1))
	if err != nil {
		t.Fatalf("PartCostAtDate failed: %v", err)
	}
	if cost != 450 {
		t.Errorf("Expected manual fallback 450, got %d", cost)
	}
}

func TestPartCostAtDate_ProjectedForecast(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)

	// RESIN_KIT's history starts 2025-01-01, so a query before that has no
	// effective record and the Projected source forecasts from the trend.
	// The history rises ~100¢/month, so one month earlier lands below the
	// first record.
	cost, err := resolver.PartCostAtDate(context.Background(), "RESIN_KIT", date(2024, 12, 1))
	if err != nil {
		t.Fatalf("PartCostAtDate failed: %v", err)
	}
	if cost < 1850 || cost >= 2000 {
		t.Errorf("Expected a forecast below the first record near 1890, got %d", cost)
	}
}

func TestPartCostAtDate_ProjectedFallsBackToManual(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()

	// A projected item with a single history record cannot fit a trend
	thin, err := entities.NewCatalogItem(
		"PIGMENT_JAR", "Pigment Jar", entities.KindPart, 700, entities.SourceProjected, nil, false)
	if err != nil {
		t.Fatalf("NewCatalogItem failed: %v", err)
	}
	stores.Catalog.AddItem(thin)
	if err := stores.History.LoadCostRecords([]entities.CostRecord{
		{ItemID: "PIGMENT_JAR", EffectiveDate: date(2025, 3, 1), CostPrice: 650},
	}); err != nil {
		t.Fatalf("LoadCostRecords failed: %v", err)
	}

	resolver := newTestResolver(stores)

	cost, err := resolver.PartCostAtDate(context.Background(), "PIGMENT_JAR", date(2025, 1, 1))
	if err != nil {
		t.Fatalf("PartCostAtDate failed: %v", err)
	}
	if cost != 700 {
		t.Errorf("Expected manual fallback 700, got %d", cost)
	}
}

func TestPartCostAtDate_UnknownItemResolvesToZero(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := newTestResolver(stores)

	cost, err := resolver.PartCostAtDate(context.Background(), "NO_SUCH_ITEM", date(2025, 6, 1))
	if err != nil {
		t.Fatalf("Expected unknown items to resolve softly, got error: %v", err)
	}
	if cost != 0 {
		t.Errorf("Expected zero cost for unknown item, got %d", cost)
	}
}

type failingHistoryRepo struct{}

func (r *failingHistoryRepo) GetCostHistory(entities.ItemID) ([]entities.CostRecord, error) {
	return nil, errors.New("history store unavailable")
}

func (r *failingHistoryRepo) LoadCostRecords([]entities.CostRecord) error { return nil }

type failingSupplierRepo struct{}

func (r *failingSupplierRepo) GetLowestPrice(entities.ItemID, time.Time, []string) (*entities.SupplierPrice, error) {
	return nil, errors.New("supplier store unavailable")
}

func (r *failingSupplierRepo) LoadQuotes([]entities.SupplierQuote) error { return nil }

func TestPartCostAtDate_HistoryErrorPropagates(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := NewCostResolver(&failingHistoryRepo{}, stores.Catalog, stores.Supplier, nil)

	_, err := resolver.PartCostAtDate(context.Background(), "FRAME_PLATE", date(2025, 6, 1))
	if err == nil {
		t.Fatal("Expected history store failure to propagate, got nil")
	}
	if !strings.Contains(err.Error(), "failed to get cost history for FRAME_PLATE") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestPartCostAtDate_SupplierErrorPropagates(t *testing.T) {
	stores := testhelpers.BuildCostingTestData()
	resolver := NewCostResolver(stores.History, stores.Catalog, &failingSupplierRepo{}, nil)

	_, err := resolver.PartCostAtDate(context.Background(), "BEARING_608", date(2025, 6, 1))
	if err == nil {
		t.Fatal("Expected supplier store failure to propagate, got nil")
	}
	if !strings.Contains(err.Error(), "failed to get supplier prices for BEARING_608") {
		t.Errorf("Unexpected error: %v", err)
	}
}
