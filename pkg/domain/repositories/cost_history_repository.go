package repositories

import "github.com/makerops/costing/pkg/domain/entities"

// CostHistoryRepository provides access to effective-dated cost records
type CostHistoryRepository interface {
	// GetCostHistory returns every cost record for an item, preserving
	// insertion order within equal effective dates. Unknown items yield an
	// empty history, not an error.
	GetCostHistory(itemID entities.ItemID) ([]entities.CostRecord, error)
	LoadCostRecords(records []entities.CostRecord) error
}
