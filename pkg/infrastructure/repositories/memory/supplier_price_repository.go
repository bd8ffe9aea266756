package memory

import (
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// SupplierPriceRepository provides in-memory supplier quote storage
type SupplierPriceRepository struct {
	quotes map[entities.ItemID][]entities.SupplierQuote
}

// NewSupplierPriceRepository creates a new in-memory supplier price repository
func NewSupplierPriceRepository() *SupplierPriceRepository {
	return &SupplierPriceRepository{
		quotes: make(map[entities.ItemID][]entities.SupplierQuote),
	}
}

// Verify interface compliance
var _ repositories.SupplierPriceRepository = (*SupplierPriceRepository)(nil)

// LoadQuotes loads supplier quotes into the repository
func (r *SupplierPriceRepository) LoadQuotes(quotes []entities.SupplierQuote) error {
	for _, quote := range quotes {
		r.AddQuote(quote)
	}
	return nil
}

// AddQuote adds a single supplier quote
func (r *SupplierPriceRepository) AddQuote(quote entities.SupplierQuote) {
	r.quotes[quote.ItemID] = append(r.quotes[quote.ItemID], quote)
}

// GetLowestPrice returns the cheapest quote among the named suppliers whose
// effective date is not after date, or (nil, nil) when no quote qualifies.
func (r *SupplierPriceRepository) GetLowestPrice(
	itemID entities.ItemID,
	date time.Time,
	suppliers []string,
) (*entities.SupplierPrice, error) {
	declared := make(map[string]bool, len(suppliers))
	for _, s := range suppliers {
		declared[s] = true
	}

	var best *entities.SupplierQuote
	for i := range r.quotes[itemID] {
		quote := &r.quotes[itemID][i]
		if !declared[quote.Supplier] {
			continue
		}
		if quote.EffectiveDate.IsZero() || quote.EffectiveDate.After(date) {
			continue
		}
		if best == nil || quote.CostPrice < best.CostPrice {
			best = quote
		}
	}

	if best == nil {
		return nil, nil
	}
	return &entities.SupplierPrice{Supplier: best.Supplier, CostPrice: best.CostPrice}, nil
}
