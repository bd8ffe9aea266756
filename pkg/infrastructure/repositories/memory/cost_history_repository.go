package memory

import (
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// CostHistoryRepository provides in-memory cost record storage. Records are
// kept in insertion order per item, which fixes the tie-break for records
// sharing an effective date: the last-inserted record wins.
type CostHistoryRepository struct {
	records map[entities.ItemID][]entities.CostRecord
}

// NewCostHistoryRepository creates a new in-memory cost history repository
func NewCostHistoryRepository() *CostHistoryRepository {
	return &CostHistoryRepository{
		records: make(map[entities.ItemID][]entities.CostRecord),
	}
}

// Verify interface compliance
var _ repositories.CostHistoryRepository = (*CostHistoryRepository)(nil)

// LoadCostRecords loads cost records into the repository
func (r *CostHistoryRepository) LoadCostRecords(records []entities.CostRecord) error {
	for _, rec := range records {
		r.AddRecord(rec)
	}
	return nil
}

// AddRecord appends a single cost record to its item's history
func (r *CostHistoryRepository) AddRecord(rec entities.CostRecord) {
	r.records[rec.ItemID] = append(r.records[rec.ItemID], rec)
}

// GetCostHistory returns all cost records for an item in insertion order.
// Unknown items yield an empty history.
func (r *CostHistoryRepository) GetCostHistory(itemID entities.ItemID) ([]entities.CostRecord, error) {
	return r.records[itemID], nil
}
