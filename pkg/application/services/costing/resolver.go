package costing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// lowConfidenceThreshold only controls logging. A low-confidence forecast is
// still used; there is no threshold rejection.
const lowConfidenceThreshold = 0.5

// CostResolver resolves the active cost of a single catalog item at a date.
// A dated history record always wins; otherwise the item's cost price source
// selects a fallback chain ending at the manual catalog price.
type CostResolver struct {
	history  repositories.CostHistoryRepository
	catalog  repositories.CatalogRepository
	supplier repositories.SupplierPriceRepository
	logger   *zap.Logger
}

// NewCostResolver creates a new cost resolver. A nil logger disables logging.
func NewCostResolver(
	history repositories.CostHistoryRepository,
	catalog repositories.CatalogRepository,
	supplier repositories.SupplierPriceRepository,
	logger *zap.Logger,
) *CostResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostResolver{
		history:  history,
		catalog:  catalog,
		supplier: supplier,
		logger:   logger,
	}
}

// costStrategy tries one cost source for an item. ok reports whether the
// source produced a cost; a miss moves resolution on to the next strategy.
type costStrategy func(item *entities.CatalogItem, history []entities.CostRecord, date time.Time) (entities.Cents, bool, error)

// fallbackChain returns the ordered strategies for an item. Every chain ends
// with the manual catalog price, which cannot miss.
func (r *CostResolver) fallbackChain(item *entities.CatalogItem) []costStrategy {
	switch item.CostPriceSource {
	case entities.SourceProjected:
		return []costStrategy{r.projectedCost, r.manualCost}
	case entities.SourceSupplierLowest:
		return []costStrategy{r.lowestSupplierCost, r.manualCost}
	default:
		return []costStrategy{r.manualCost}
	}
}

// PartCostAtDate resolves the unit cost of a part or fastener as of date.
// An item found in neither catalog resolves to zero: unknown cost is a
// normal condition for new or draft items, not an error. Store read
// failures propagate.
func (r *CostResolver) PartCostAtDate(
	ctx context.Context,
	itemID entities.ItemID,
	date time.Time,
) (entities.Cents, error) {
	history, err := r.history.GetCostHistory(itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to get cost history for %s: %w", itemID, err)
	}

	// A dated history record always wins over catalog settings
	if rec := FindEffectiveCost(history, date); rec != nil {
		return rec.CostPrice, nil
	}

	item, err := r.catalog.FindItem(itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to look up catalog item %s: %w", itemID, err)
	}
	if item == nil {
		return 0, nil
	}

	for _, strategy := range r.fallbackChain(item) {
		cost, ok, err := strategy(item, history, date)
		if err != nil {
			return 0, err
		}
		if ok {
			return cost, nil
		}
	}

	return 0, nil
}

// projectedCost forecasts from the item's full history. Misses when the
// history is too thin to fit a trend.
func (r *CostResolver) projectedCost(
	item *entities.CatalogItem,
	history []entities.CostRecord,
	date time.Time,
) (entities.Cents, bool, error) {
	forecast := ForecastCostAtDate(history, date)
	if forecast == nil {
		return 0, false, nil
	}

	if forecast.Confidence < lowConfidenceThreshold {
		r.logger.Warn("using low-confidence projected cost",
			zap.String("item_id", string(item.ID)),
			zap.Float64("confidence", forecast.Confidence),
			zap.Int64("forecasted_cost", int64(forecast.ForecastedCost)))
	}

	return forecast.ForecastedCost, true, nil
}

// lowestSupplierCost queries the cheapest active quote among the item's
// declared suppliers. Misses when no quote qualifies.
func (r *CostResolver) lowestSupplierCost(
	item *entities.CatalogItem,
	_ []entities.CostRecord,
	date time.Time,
) (entities.Cents, bool, error) {
	price, err := r.supplier.GetLowestPrice(item.ID, date, item.Suppliers)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get supplier prices for %s: %w", item.ID, err)
	}
	if price == nil {
		return 0, false, nil
	}
	return price.CostPrice, true, nil
}

// manualCost returns the catalog's manual price. Never misses.
func (r *CostResolver) manualCost(
	item *entities.CatalogItem,
	_ []entities.CostRecord,
	_ time.Time,
) (entities.Cents, bool, error) {
	return item.CostPrice, true, nil
}
