package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/makerops/costing/pkg/application/dto"
	"github.com/makerops/costing/pkg/domain/entities"
)

// ProgressFunc is notified after each product in a batch is costed
type ProgressFunc func(done, total int)

// BatchCostingService rolls up many products in one pass, e.g. for catalog
// reporting. Every product is costed as of the same date so the batch is
// internally consistent.
type BatchCostingService struct {
	costs *CostService
}

// NewBatchCostingService creates a new batch costing service
func NewBatchCostingService(costs *CostService) *BatchCostingService {
	return &BatchCostingService{costs: costs}
}

// CostProducts computes the cost of every listed product as of date,
// preserving input order. progress may be nil.
func (s *BatchCostingService) CostProducts(
	ctx context.Context,
	productIDs []entities.ItemID,
	date time.Time,
	progress ProgressFunc,
) ([]*dto.ProductCost, error) {
	results := make([]*dto.ProductCost, 0, len(productIDs))

	for i, productID := range productIDs {
		result, err := s.costs.CalculateProductCost(ctx, productID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to cost product %s: %w", productID, err)
		}
		results = append(results, result)

		if progress != nil {
			progress(i+1, len(productIDs))
		}
	}

	return results, nil
}
