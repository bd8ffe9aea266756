package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/makerops/costing/pkg/domain/entities"
)

// Loader handles loading costing data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalogItems loads catalog items from a CSV file
func (l *Loader) LoadCatalogItems(filename string) ([]*entities.CatalogItem, error) {
	records, err := readAll(filename, "items")
	if err != nil {
		return nil, err
	}

	// Validate header
	expectedHeader := []string{"item_id", "description", "kind", "cost_price_cents", "cost_price_source", "suppliers", "is_serialized"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("items CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var items []*entities.CatalogItem
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("items CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		item, err := parseCatalogItem(record)
		if err != nil {
			return nil, fmt.Errorf("items CSV row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

// LoadProducts loads product master data from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readAll(filename, "products")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "description", "labour_hours", "labour_minutes"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// LoadCostHistory loads effective-dated cost records from a CSV file.
// Rows with an unparseable effective_date are kept with a zero date; the
// resolver excludes them, matching how the rest of the system treats
// malformed dates as silently non-effective rather than fatal.
func (l *Loader) LoadCostHistory(filename string) ([]entities.CostRecord, error) {
	records, err := readAll(filename, "cost history")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"item_id", "effective_date", "cost_price_cents"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("cost history CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var history []entities.CostRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("cost history CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		costPrice, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cost history CSV row %d: invalid cost_price_cents: %s", i+2, record[2])
		}

		effectiveDate, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			effectiveDate = time.Time{}
		}

		history = append(history, entities.CostRecord{
			ItemID:        entities.ItemID(record[0]),
			EffectiveDate: effectiveDate,
			CostPrice:     entities.Cents(costPrice),
		})
	}

	return history, nil
}

// LoadBOMEntries loads BOM lines from a CSV file, grouped by product. An
// empty component_kind marks a legacy flat row, which normalises to a part
// line.
func (l *Loader) LoadBOMEntries(filename string) (map[entities.ItemID]*entities.BOM, error) {
	records, err := readAll(filename, "BOM")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "component_id", "component_kind", "quantity_used"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("BOM CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	boms := make(map[entities.ItemID]*entities.BOM)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("BOM CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		productID := entities.ItemID(record[0])

		kind := entities.KindPart
		if kindStr := strings.TrimSpace(record[2]); kindStr != "" {
			kind, err = entities.ParseItemKind(kindStr)
			if err != nil {
				return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
			}
		}

		quantity, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: invalid quantity_used: %s", i+2, record[3])
		}

		entry, err := entities.NewBOMEntry(entities.ItemID(record[1]), kind, quantity)
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
		}

		bom, exists := boms[productID]
		if !exists {
			bom = &entities.BOM{}
			boms[productID] = bom
		}
		if kind == entities.KindFastener {
			bom.Fasteners = append(bom.Fasteners, *entry)
		} else {
			bom.Parts = append(bom.Parts, *entry)
		}
	}

	return boms, nil
}

// LoadSupplierQuotes loads supplier quotes from a CSV file
func (l *Loader) LoadSupplierQuotes(filename string) ([]entities.SupplierQuote, error) {
	records, err := readAll(filename, "supplier quotes")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"item_id", "supplier", "cost_price_cents", "effective_date"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("supplier quotes CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var quotes []entities.SupplierQuote
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("supplier quotes CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		costPrice, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("supplier quotes CSV row %d: invalid cost_price_cents: %s", i+2, record[2])
		}

		effectiveDate, err := time.Parse("2006-01-02", record[3])
		if err != nil {
			return nil, fmt.Errorf("supplier quotes CSV row %d: invalid effective_date format: %s (expected YYYY-MM-DD)", i+2, record[3])
		}

		quotes = append(quotes, entities.SupplierQuote{
			ItemID:        entities.ItemID(record[0]),
			Supplier:      record[1],
			CostPrice:     entities.Cents(costPrice),
			EffectiveDate: effectiveDate,
		})
	}

	return quotes, nil
}

// Helper functions for parsing CSV records

func readAll(filename, label string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", label, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", label, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", label)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseCatalogItem(record []string) (*entities.CatalogItem, error) {
	kind, err := entities.ParseItemKind(record[2])
	if err != nil {
		return nil, err
	}

	costPrice, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cost_price_cents: %s", record[3])
	}

	source, err := entities.ParseCostPriceSource(record[4])
	if err != nil {
		return nil, err
	}

	// Suppliers are semicolon-separated within the one CSV cell
	var suppliers []string
	for _, supplier := range strings.Split(record[5], ";") {
		if supplier = strings.TrimSpace(supplier); supplier != "" {
			suppliers = append(suppliers, supplier)
		}
	}

	isSerialized, err := strconv.ParseBool(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid is_serialized: %s", record[6])
	}

	return entities.NewCatalogItem(
		entities.ItemID(record[0]),
		record[1],
		kind,
		entities.Cents(costPrice),
		source,
		suppliers,
		isSerialized,
	)
}

func parseProduct(record []string) (*entities.Product, error) {
	labourHours, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid labour_hours: %s", record[2])
	}

	labourMinutes, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid labour_minutes: %s", record[3])
	}

	return entities.NewProduct(entities.ItemID(record[0]), record[1], labourHours, labourMinutes)
}
