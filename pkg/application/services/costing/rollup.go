package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/makerops/costing/pkg/application/dto"
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// CostService rolls per-component costs up through a product's BOM into a
// total product cost with a line-by-line breakdown.
type CostService struct {
	resolver *CostResolver
	catalog  repositories.CatalogRepository
	bom      repositories.BOMRepository
	settings repositories.SettingsRepository
	logger   *zap.Logger
}

// NewCostService creates a new product costing service. A nil logger
// disables logging.
func NewCostService(
	resolver *CostResolver,
	catalog repositories.CatalogRepository,
	bom repositories.BOMRepository,
	settings repositories.SettingsRepository,
	logger *zap.Logger,
) *CostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostService{
		resolver: resolver,
		catalog:  catalog,
		bom:      bom,
		settings: settings,
		logger:   logger,
	}
}

// CalculateProductCost computes the total cost of one product unit as of
// date: part lines, fastener lines, and a labour charge when the product
// records labour time. An empty BOM with no labour is a valid zero-cost
// result. Component store failures propagate; labour failures degrade to
// "no labour cost" and never abort the roll-up.
//
// Callers wanting a consistent multi-product roll-up must pass the same
// date to every call; the service never substitutes "now" internally.
func (s *CostService) CalculateProductCost(
	ctx context.Context,
	productID entities.ItemID,
	date time.Time,
) (*dto.ProductCost, error) {
	bom, err := s.bom.GetBOM(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get BOM for %s: %w", productID, err)
	}

	result := &dto.ProductCost{
		ProductID: productID,
		AsOf:      date,
		Breakdown: []entities.CostBreakdownLine{},
	}

	for _, entry := range bom.Parts {
		if err := s.addComponentLine(ctx, result, entry, entities.LinePart, date); err != nil {
			return nil, err
		}
	}
	for _, entry := range bom.Fasteners {
		if err := s.addComponentLine(ctx, result, entry, entities.LineFastener, date); err != nil {
			return nil, err
		}
	}

	s.addLabourLine(result, productID)

	return result, nil
}

// addComponentLine resolves one BOM line's unit cost and appends its
// breakdown line. subtotal = round(unitCost * quantityUsed).
func (s *CostService) addComponentLine(
	ctx context.Context,
	result *dto.ProductCost,
	entry entities.BOMEntry,
	kind entities.LineKind,
	date time.Time,
) error {
	unitCost, err := s.resolver.PartCostAtDate(ctx, entry.ComponentID, date)
	if err != nil {
		return fmt.Errorf("failed to resolve cost for %s: %w", entry.ComponentID, err)
	}

	subtotal := decimal.NewFromInt(int64(unitCost)).Mul(entry.QuantityUsed)

	result.Append(entities.CostBreakdownLine{
		ComponentID: entry.ComponentID,
		Kind:        kind,
		UnitCost:    unitCost,
		Quantity:    entry.QuantityUsed,
		Subtotal:    entities.Cents(subtotal.Round(0).IntPart()),
	})
	return nil
}

// addLabourLine appends the labour charge for the product. Any failure on
// this path is swallowed with a warning: labour is simply omitted rather
// than aborting the whole cost computation.
func (s *CostService) addLabourLine(result *dto.ProductCost, productID entities.ItemID) {
	product, err := s.catalog.FindProduct(productID)
	if err != nil {
		s.logger.Warn("labour cost unavailable",
			zap.String("product_id", string(productID)),
			zap.Error(err))
		return
	}
	if product == nil || !product.HasLabour() {
		return
	}

	rate, err := s.settings.GetLabourRate()
	if err != nil {
		s.logger.Warn("labour cost unavailable",
			zap.String("product_id", string(productID)),
			zap.Error(err))
		return
	}

	hours := decimal.NewFromInt(int64(product.TotalLabourMinutes())).
		Div(decimal.NewFromInt(60))

	result.Append(entities.CostBreakdownLine{
		ComponentID: productID,
		Kind:        entities.LineLabour,
		UnitCost:    rate,
		Quantity:    hours,
		Subtotal:    product.LabourCost(rate),
	})
}
