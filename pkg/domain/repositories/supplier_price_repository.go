package repositories

import (
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

// SupplierPriceRepository provides access to supplier quote data
type SupplierPriceRepository interface {
	// GetLowestPrice returns the cheapest quote among the named suppliers
	// whose effective date is not after the given date, or (nil, nil) when
	// no quote qualifies.
	GetLowestPrice(itemID entities.ItemID, date time.Time, suppliers []string) (*entities.SupplierPrice, error)
	LoadQuotes(quotes []entities.SupplierQuote) error
}
