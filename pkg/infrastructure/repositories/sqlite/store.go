package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

const dateFormat = "2006-01-02"

const labourRateKey = "labour_rate_cents"

// Store provides SQLite-backed costing storage. One store serves all five
// repository roles so a single database file holds a complete scenario.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database, running any pending
// migrations first.
func NewStore(db *sql.DB) (*Store, error) {
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Verify interface compliance
var _ repositories.CostHistoryRepository = (*Store)(nil)
var _ repositories.CatalogRepository = (*Store)(nil)
var _ repositories.SupplierPriceRepository = (*Store)(nil)
var _ repositories.BOMRepository = (*Store)(nil)
var _ repositories.SettingsRepository = (*Store)(nil)

// GetCostHistory returns every cost record for an item in insertion order.
// Rows with an unparseable or missing date carry a zero date; the resolver
// excludes them.
func (s *Store) GetCostHistory(itemID entities.ItemID) ([]entities.CostRecord, error) {
	rows, err := s.db.Query(`
		SELECT effective_date, cost_price_cents
		FROM cost_records
		WHERE item_id = ?
		ORDER BY id`, string(itemID))
	if err != nil {
		return nil, fmt.Errorf("query cost records: %w", err)
	}
	defer rows.Close()

	var history []entities.CostRecord
	for rows.Next() {
		var dateStr sql.NullString
		var costPrice int64
		if err := rows.Scan(&dateStr, &costPrice); err != nil {
			return nil, fmt.Errorf("scan cost record: %w", err)
		}

		var effectiveDate time.Time
		if dateStr.Valid {
			effectiveDate, _ = time.Parse(dateFormat, dateStr.String)
		}

		history = append(history, entities.CostRecord{
			ItemID:        itemID,
			EffectiveDate: effectiveDate,
			CostPrice:     entities.Cents(costPrice),
		})
	}
	return history, rows.Err()
}

// LoadCostRecords appends cost records. Zero dates persist as NULL.
func (s *Store) LoadCostRecords(records []entities.CostRecord) error {
	for _, rec := range records {
		var dateStr any
		if !rec.EffectiveDate.IsZero() {
			dateStr = rec.EffectiveDate.Format(dateFormat)
		}
		if _, err := s.db.Exec(`
			INSERT INTO cost_records (item_id, effective_date, cost_price_cents)
			VALUES (?, ?, ?)`,
			string(rec.ItemID), dateStr, int64(rec.CostPrice)); err != nil {
			return fmt.Errorf("insert cost record for %s: %w", rec.ItemID, err)
		}
	}
	return nil
}

// FindItem searches the part catalog first, then the fastener catalog.
// Returns (nil, nil) when the item exists in neither.
func (s *Store) FindItem(itemID entities.ItemID) (*entities.CatalogItem, error) {
	for _, kind := range []entities.ItemKind{entities.KindPart, entities.KindFastener} {
		item, err := s.findItemByKind(itemID, kind)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
	}
	return nil, nil
}

func (s *Store) findItemByKind(itemID entities.ItemID, kind entities.ItemKind) (*entities.CatalogItem, error) {
	row := s.db.QueryRow(`
		SELECT description, cost_price_cents, cost_price_source, suppliers, is_serialized
		FROM catalog_items
		WHERE item_id = ? AND kind = ?`, string(itemID), kind.String())

	var description, sourceStr, suppliersStr string
	var costPrice int64
	var isSerialized bool
	err := row.Scan(&description, &costPrice, &sourceStr, &suppliersStr, &isSerialized)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog item %s: %w", itemID, err)
	}

	source, err := entities.ParseCostPriceSource(sourceStr)
	if err != nil {
		return nil, fmt.Errorf("catalog item %s: %w", itemID, err)
	}

	var suppliers []string
	for _, supplier := range strings.Split(suppliersStr, ";") {
		if supplier = strings.TrimSpace(supplier); supplier != "" {
			suppliers = append(suppliers, supplier)
		}
	}

	return &entities.CatalogItem{
		ID:              itemID,
		Description:     description,
		Kind:            kind,
		CostPrice:       entities.Cents(costPrice),
		CostPriceSource: source,
		Suppliers:       suppliers,
		IsSerialized:    isSerialized,
	}, nil
}

// FindProduct returns (nil, nil) when the product does not exist
func (s *Store) FindProduct(productID entities.ItemID) (*entities.Product, error) {
	row := s.db.QueryRow(`
		SELECT description, labour_hours, labour_minutes
		FROM products
		WHERE product_id = ?`, string(productID))

	var description string
	var hours, minutes int
	err := row.Scan(&description, &hours, &minutes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product %s: %w", productID, err)
	}

	return &entities.Product{
		ID:            productID,
		Description:   description,
		LabourHours:   hours,
		LabourMinutes: minutes,
	}, nil
}

// LoadItems upserts catalog items
func (s *Store) LoadItems(items []*entities.CatalogItem) error {
	for _, item := range items {
		if _, err := s.db.Exec(`
			INSERT OR REPLACE INTO catalog_items
				(item_id, description, kind, cost_price_cents, cost_price_source, suppliers, is_serialized)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(item.ID), item.Description, item.Kind.String(),
			int64(item.CostPrice), item.CostPriceSource.String(),
			strings.Join(item.Suppliers, ";"), item.IsSerialized); err != nil {
			return fmt.Errorf("insert catalog item %s: %w", item.ID, err)
		}
	}
	return nil
}

// LoadProducts upserts product master data
func (s *Store) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		if _, err := s.db.Exec(`
			INSERT OR REPLACE INTO products (product_id, description, labour_hours, labour_minutes)
			VALUES (?, ?, ?, ?)`,
			string(product.ID), product.Description,
			product.LabourHours, product.LabourMinutes); err != nil {
			return fmt.Errorf("insert product %s: %w", product.ID, err)
		}
	}
	return nil
}

// GetLowestPrice returns the cheapest quote among the named suppliers whose
// effective date is not after the given date, or (nil, nil) when no quote
// qualifies.
func (s *Store) GetLowestPrice(
	itemID entities.ItemID,
	date time.Time,
	suppliers []string,
) (*entities.SupplierPrice, error) {
	if len(suppliers) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(suppliers))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(suppliers)+2)
	args = append(args, string(itemID), date.Format(dateFormat))
	for _, supplier := range suppliers {
		args = append(args, supplier)
	}

	row := s.db.QueryRow(`
		SELECT supplier, cost_price_cents
		FROM supplier_quotes
		WHERE item_id = ? AND effective_date <= ? AND supplier IN (`+placeholders+`)
		ORDER BY cost_price_cents, id
		LIMIT 1`, args...)

	var supplier string
	var costPrice int64
	err := row.Scan(&supplier, &costPrice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query supplier quotes for %s: %w", itemID, err)
	}

	return &entities.SupplierPrice{
		Supplier:  supplier,
		CostPrice: entities.Cents(costPrice),
	}, nil
}

// LoadQuotes appends supplier quotes
func (s *Store) LoadQuotes(quotes []entities.SupplierQuote) error {
	for _, quote := range quotes {
		if _, err := s.db.Exec(`
			INSERT INTO supplier_quotes (item_id, supplier, cost_price_cents, effective_date)
			VALUES (?, ?, ?, ?)`,
			string(quote.ItemID), quote.Supplier,
			int64(quote.CostPrice), quote.EffectiveDate.Format(dateFormat)); err != nil {
			return fmt.Errorf("insert supplier quote for %s: %w", quote.ItemID, err)
		}
	}
	return nil
}

// GetBOM returns a product's BOM in canonical shape. Legacy rows with an
// empty component_kind read back as part lines. Unknown products yield an
// empty BOM, not an error.
func (s *Store) GetBOM(productID entities.ItemID) (*entities.BOM, error) {
	rows, err := s.db.Query(`
		SELECT component_id, component_kind, quantity_used
		FROM bom_entries
		WHERE product_id = ?
		ORDER BY id`, string(productID))
	if err != nil {
		return nil, fmt.Errorf("query BOM for %s: %w", productID, err)
	}
	defer rows.Close()

	bom := &entities.BOM{}
	for rows.Next() {
		var componentID, kindStr, quantityStr string
		if err := rows.Scan(&componentID, &kindStr, &quantityStr); err != nil {
			return nil, fmt.Errorf("scan BOM entry: %w", err)
		}

		kind := entities.KindPart
		if kindStr != "" {
			kind, err = entities.ParseItemKind(kindStr)
			if err != nil {
				return nil, fmt.Errorf("BOM for %s: %w", productID, err)
			}
		}

		quantity, err := decimal.NewFromString(quantityStr)
		if err != nil {
			return nil, fmt.Errorf("BOM for %s: invalid quantity %q: %w", productID, quantityStr, err)
		}

		entry := entities.BOMEntry{ComponentID: entities.ItemID(componentID), Kind: kind, QuantityUsed: quantity}
		if kind == entities.KindFastener {
			bom.Fasteners = append(bom.Fasteners, entry)
		} else {
			bom.Parts = append(bom.Parts, entry)
		}
	}
	return bom, rows.Err()
}

// LoadBOM stores a product's BOM in canonical shape
func (s *Store) LoadBOM(productID entities.ItemID, bom *entities.BOM) error {
	insert := func(entries []entities.BOMEntry, kind entities.ItemKind) error {
		for _, entry := range entries {
			if _, err := s.db.Exec(`
				INSERT INTO bom_entries (product_id, component_id, component_kind, quantity_used)
				VALUES (?, ?, ?, ?)`,
				string(productID), string(entry.ComponentID),
				kind.String(), entry.QuantityUsed.String()); err != nil {
				return fmt.Errorf("insert BOM entry for %s: %w", productID, err)
			}
		}
		return nil
	}

	if err := insert(bom.Parts, entities.KindPart); err != nil {
		return err
	}
	return insert(bom.Fasteners, entities.KindFastener)
}

// AllProductIDs returns the ids of every stored product
func (s *Store) AllProductIDs() ([]entities.ItemID, error) {
	rows, err := s.db.Query(`SELECT product_id FROM products ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("query product ids: %w", err)
	}
	defer rows.Close()

	var ids []entities.ItemID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, entities.ItemID(id))
	}
	return ids, rows.Err()
}

// GetLabourRate returns the shop labour rate in cents per hour, or zero
// when none has been set
func (s *Store) GetLabourRate() (entities.Cents, error) {
	row := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, labourRateKey)

	var value int64
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query labour rate: %w", err)
	}
	return entities.Cents(value), nil
}

// SetLabourRate stores the shop labour rate in cents per hour
func (s *Store) SetLabourRate(rate entities.Cents) error {
	if _, err := s.db.Exec(`
		INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		labourRateKey, int64(rate)); err != nil {
		return fmt.Errorf("store labour rate: %w", err)
	}
	return nil
}
