package memory

import (
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// CatalogRepository provides in-memory catalog storage with separate part
// and fastener namespaces, plus product master data.
type CatalogRepository struct {
	parts     map[entities.ItemID]*entities.CatalogItem
	fasteners map[entities.ItemID]*entities.CatalogItem
	products  map[entities.ItemID]*entities.Product
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		parts:     make(map[entities.ItemID]*entities.CatalogItem),
		fasteners: make(map[entities.ItemID]*entities.CatalogItem),
		products:  make(map[entities.ItemID]*entities.Product),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadItems loads catalog items into their kind's namespace
func (r *CatalogRepository) LoadItems(items []*entities.CatalogItem) error {
	for _, item := range items {
		r.AddItem(item)
	}
	return nil
}

// AddItem adds a single catalog item
func (r *CatalogRepository) AddItem(item *entities.CatalogItem) {
	if item.Kind == entities.KindFastener {
		r.fasteners[item.ID] = item
		return
	}
	r.parts[item.ID] = item
}

// LoadProducts loads product master data
func (r *CatalogRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		r.products[product.ID] = product
	}
	return nil
}

// FindItem searches the part catalog first, then the fastener catalog.
// Returns (nil, nil) when the item exists in neither.
func (r *CatalogRepository) FindItem(itemID entities.ItemID) (*entities.CatalogItem, error) {
	if item, exists := r.parts[itemID]; exists {
		return item, nil
	}
	if item, exists := r.fasteners[itemID]; exists {
		return item, nil
	}
	return nil, nil
}

// FindProduct returns (nil, nil) when the product does not exist
func (r *CatalogRepository) FindProduct(productID entities.ItemID) (*entities.Product, error) {
	return r.products[productID], nil
}

// AllProductIDs returns the ids of every loaded product
func (r *CatalogRepository) AllProductIDs() []entities.ItemID {
	ids := make([]entities.ItemID, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	return ids
}
