package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/infrastructure/repositories/memory"
)

// mustCreateItem is a helper for tests - panics on validation error
func mustCreateItem(
	id, description string,
	kind entities.ItemKind,
	costPrice entities.Cents,
	source entities.CostPriceSource,
	suppliers []string,
) *entities.CatalogItem {
	item, err := entities.NewCatalogItem(
		entities.ItemID(id),
		description,
		kind,
		costPrice,
		source,
		suppliers,
		false,
	)
	if err != nil {
		panic(err)
	}
	return item
}

// mustCreateProduct is a helper for tests - panics on validation error
func mustCreateProduct(id, description string, labourHours, labourMinutes int) *entities.Product {
	product, err := entities.NewProduct(entities.ItemID(id), description, labourHours, labourMinutes)
	if err != nil {
		panic(err)
	}
	return product
}

// mustCreateBOMEntry is a helper for tests - panics on validation error
func mustCreateBOMEntry(componentID string, kind entities.ItemKind, quantity string) entities.BOMEntry {
	entry, err := entities.NewBOMEntry(
		entities.ItemID(componentID),
		kind,
		decimal.RequireFromString(quantity),
	)
	if err != nil {
		panic(err)
	}
	return *entry
}

// Stores bundles the five seeded in-memory repositories used by service tests
type Stores struct {
	History  *memory.CostHistoryRepository
	Catalog  *memory.CatalogRepository
	Supplier *memory.SupplierPriceRepository
	BOM      *memory.BOMRepository
	Settings *memory.SettingsRepository
}

// BuildCostingTestData builds the workshop test scenario:
//
//   - FRAME_PLATE: manual part at 500¢
//   - BOLT_M6: manual fastener at 50¢
//   - STEEL_ROD: manual part with a dated history of 1000/1100/1200¢ on the
//     first of Jan/Feb/Mar 2025
//   - RESIN_KIT: projected part with a linearly rising history
//   - BEARING_608: supplier-lowest part quoting Acme at 420¢ and Bolt&Co at
//     380¢, manual fallback 450¢
//   - WIDGET: product of 3 FRAME_PLATE + 10 BOLT_M6 with 1h30m labour
//
// Labour rate is 6000¢/hour.
func BuildCostingTestData() *Stores {
	stores := &Stores{
		History:  memory.NewCostHistoryRepository(),
		Catalog:  memory.NewCatalogRepository(),
		Supplier: memory.NewSupplierPriceRepository(),
		BOM:      memory.NewBOMRepository(),
		Settings: memory.NewSettingsRepository(),
	}

	items := []*entities.CatalogItem{
		mustCreateItem("FRAME_PLATE", "Frame Plate", entities.KindPart, 500, entities.SourceManual, nil),
		mustCreateItem("BOLT_M6", "M6 Hex Bolt", entities.KindFastener, 50, entities.SourceManual, nil),
		mustCreateItem("STEEL_ROD", "Steel Rod 12mm", entities.KindPart, 900, entities.SourceManual, nil),
		mustCreateItem("RESIN_KIT", "Casting Resin Kit", entities.KindPart, 2000, entities.SourceProjected, nil),
		mustCreateItem(
			"BEARING_608",
			"608 Ball Bearing",
			entities.KindPart,
			450,
			entities.SourceSupplierLowest,
			[]string{"Acme", "Bolt&Co"},
		),
	}
	if err := stores.Catalog.LoadItems(items); err != nil {
		panic(err)
	}

	products := []*entities.Product{
		mustCreateProduct("WIDGET", "Widget Assembly", 1, 30),
		mustCreateProduct("BARE_SHELF", "Bare Shelf", 0, 0),
	}
	if err := stores.Catalog.LoadProducts(products); err != nil {
		panic(err)
	}

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	records := []entities.CostRecord{
		{ItemID: "STEEL_ROD", EffectiveDate: jan, CostPrice: 1000},
		{ItemID: "STEEL_ROD", EffectiveDate: feb, CostPrice: 1100},
		{ItemID: "STEEL_ROD", EffectiveDate: mar, CostPrice: 1200},
		{ItemID: "RESIN_KIT", EffectiveDate: jan, CostPrice: 2000},
		{ItemID: "RESIN_KIT", EffectiveDate: feb, CostPrice: 2100},
		{ItemID: "RESIN_KIT", EffectiveDate: mar, CostPrice: 2200},
	}
	if err := stores.History.LoadCostRecords(records); err != nil {
		panic(err)
	}

	quotes := []entities.SupplierQuote{
		{ItemID: "BEARING_608", Supplier: "Acme", CostPrice: 420, EffectiveDate: jan},
		{ItemID: "BEARING_608", Supplier: "Bolt&Co", CostPrice: 380, EffectiveDate: jan},
	}
	if err := stores.Supplier.LoadQuotes(quotes); err != nil {
		panic(err)
	}

	widgetBOM := &entities.BOM{
		Parts:     []entities.BOMEntry{mustCreateBOMEntry("FRAME_PLATE", entities.KindPart, "3")},
		Fasteners: []entities.BOMEntry{mustCreateBOMEntry("BOLT_M6", entities.KindFastener, "10")},
	}
	if err := stores.BOM.LoadBOM("WIDGET", widgetBOM); err != nil {
		panic(err)
	}

	if err := stores.Settings.SetLabourRate(6000); err != nil {
		panic(err)
	}

	return stores
}
