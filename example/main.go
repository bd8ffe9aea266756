// Example demonstrating programmatic use of the costing engine with
// in-memory repositories.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/makerops/costing/pkg/application/services/costing"
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/infrastructure/repositories/memory"
)

func main() {
	catalogRepo := memory.NewCatalogRepository()
	historyRepo := memory.NewCostHistoryRepository()
	supplierRepo := memory.NewSupplierPriceRepository()
	bomRepo := memory.NewBOMRepository()
	settingsRepo := memory.NewSettingsRepository()

	// Catalog: two manually priced components and one product
	framePlate, err := entities.NewCatalogItem(
		"FRAME_PLATE", "Frame Plate", entities.KindPart, 500, entities.SourceManual, nil, false)
	if err != nil {
		log.Fatal(err)
	}
	bolt, err := entities.NewCatalogItem(
		"BOLT_M6", "M6 Hex Bolt", entities.KindFastener, 50, entities.SourceManual, nil, false)
	if err != nil {
		log.Fatal(err)
	}
	if err := catalogRepo.LoadItems([]*entities.CatalogItem{framePlate, bolt}); err != nil {
		log.Fatal(err)
	}

	widget, err := entities.NewProduct("WIDGET", "Widget Assembly", 1, 30)
	if err != nil {
		log.Fatal(err)
	}
	if err := catalogRepo.LoadProducts([]*entities.Product{widget}); err != nil {
		log.Fatal(err)
	}

	// FRAME_PLATE's price rose in February; costs resolve per the as-of date
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	err = historyRepo.LoadCostRecords([]entities.CostRecord{
		{ItemID: "FRAME_PLATE", EffectiveDate: jan, CostPrice: 500},
		{ItemID: "FRAME_PLATE", EffectiveDate: feb, CostPrice: 550},
	})
	if err != nil {
		log.Fatal(err)
	}

	plateEntry, err := entities.NewBOMEntry("FRAME_PLATE", entities.KindPart, decimal.NewFromInt(3))
	if err != nil {
		log.Fatal(err)
	}
	boltEntry, err := entities.NewBOMEntry("BOLT_M6", entities.KindFastener, decimal.NewFromInt(10))
	if err != nil {
		log.Fatal(err)
	}
	err = bomRepo.LoadBOM("WIDGET", &entities.BOM{
		Parts:     []entities.BOMEntry{*plateEntry},
		Fasteners: []entities.BOMEntry{*boltEntry},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := settingsRepo.SetLabourRate(6000); err != nil {
		log.Fatal(err)
	}

	resolver := costing.NewCostResolver(historyRepo, catalogRepo, supplierRepo, nil)
	costService := costing.NewCostService(resolver, catalogRepo, bomRepo, settingsRepo, nil)

	ctx := context.Background()
	for _, asOf := range []time.Time{jan, feb} {
		result, err := costService.CalculateProductCost(ctx, "WIDGET", asOf)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("WIDGET as of %s:\n", asOf.Format("2006-01-02"))
		for _, line := range result.Breakdown {
			fmt.Printf("  %-12s %-9s %s x %s = %s\n",
				line.ComponentID, line.Kind, line.UnitCost, line.Quantity, line.Subtotal)
		}
		fmt.Printf("  Total: %s\n\n", result.TotalCost)
	}
}
