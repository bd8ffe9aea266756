package repositories

import "github.com/makerops/costing/pkg/domain/entities"

// CatalogRepository provides read access to catalog master data
type CatalogRepository interface {
	// FindItem searches the part catalog first, then the fastener catalog.
	// Returns (nil, nil) when the item exists in neither namespace; absence
	// is a soft miss, not an error.
	FindItem(itemID entities.ItemID) (*entities.CatalogItem, error)

	// FindProduct returns (nil, nil) when the product does not exist.
	FindProduct(productID entities.ItemID) (*entities.Product, error)

	LoadItems(items []*entities.CatalogItem) error
	LoadProducts(products []*entities.Product) error
}
