package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/makerops/costing/pkg/application/dto"
	"github.com/makerops/costing/pkg/application/services/costing"
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
	domainservices "github.com/makerops/costing/pkg/domain/services"
	"github.com/makerops/costing/pkg/infrastructure/repositories/csv"
	"github.com/makerops/costing/pkg/infrastructure/repositories/memory"
	"github.com/makerops/costing/pkg/infrastructure/repositories/sqlite"
	"github.com/makerops/costing/pkg/interfaces/cli/output"
)

// Config holds configuration for the cost command
type Config struct {
	ScenarioDir  string
	DBFile       string
	ItemsFile    string
	ProductsFile string
	BOMFile      string
	HistoryFile  string
	QuotesFile   string
	ProductID    string
	AllProducts  bool
	Date         string
	LabourRate   int64
	Format       string
	Verbose      bool
	Help         bool
}

// stores bundles the repositories the costing services need, regardless of
// which backend provided them
type stores struct {
	history    repositories.CostHistoryRepository
	catalog    repositories.CatalogRepository
	supplier   repositories.SupplierPriceRepository
	bom        repositories.BOMRepository
	settings   repositories.SettingsRepository
	productIDs func() ([]entities.ItemID, error)
}

// CostCommand handles the product costing execution logic
type CostCommand struct {
	config Config
}

// NewCostCommand creates a new cost command with the given configuration
func NewCostCommand(config Config) *CostCommand {
	return &CostCommand{
		config: config,
	}
}

// Execute runs the cost command
func (c *CostCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	asOf, err := time.Parse("2006-01-02", c.config.Date)
	if err != nil {
		return fmt.Errorf("invalid -date %q (expected YYYY-MM-DD)", c.config.Date)
	}

	var st *stores
	if c.config.DBFile != "" {
		st, err = c.loadSQLiteStores()
	} else {
		st, err = c.loadCSVStores()
	}
	if err != nil {
		return err
	}

	if c.config.LabourRate >= 0 {
		if err := st.settings.SetLabourRate(entities.Cents(c.config.LabourRate)); err != nil {
			return fmt.Errorf("failed to set labour rate: %w", err)
		}
	}

	logger := zap.NewNop()
	if c.config.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()
	}

	resolver := costing.NewCostResolver(st.history, st.catalog, st.supplier, logger)
	costService := costing.NewCostService(resolver, st.catalog, st.bom, st.settings, logger)

	var results []*dto.ProductCost
	startTime := time.Now()

	if c.config.AllProducts {
		productIDs, err := st.productIDs()
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		if len(productIDs) == 0 {
			return fmt.Errorf("no products found")
		}

		var progress costing.ProgressFunc
		if c.config.Verbose {
			bar := progressbar.Default(int64(len(productIDs)), "costing products")
			progress = func(done, total int) {
				_ = bar.Set(done)
			}
		}

		batch := costing.NewBatchCostingService(costService)
		results, err = batch.CostProducts(ctx, productIDs, asOf, progress)
		if err != nil {
			return err
		}
	} else {
		result, err := costService.CalculateProductCost(ctx, entities.ItemID(c.config.ProductID), asOf)
		if err != nil {
			return err
		}
		results = []*dto.ProductCost{result}
	}

	if c.config.Verbose {
		fmt.Printf("✅ Costed %d product(s) in %v\n\n", len(results), time.Since(startTime))
	}

	return output.Generate(results, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

// validateInputs validates the command configuration
func (c *CostCommand) validateInputs() error {
	if c.config.DBFile == "" && c.config.ScenarioDir == "" &&
		(c.config.ItemsFile == "" || c.config.ProductsFile == "" || c.config.BOMFile == "") {
		return fmt.Errorf("must specify -db, -scenario, or individual CSV files")
	}
	if c.config.ProductID == "" && !c.config.AllProducts {
		return fmt.Errorf("must specify -product or -all")
	}
	if c.config.Date == "" {
		return fmt.Errorf("must specify -date (costs are always resolved as of an explicit date)")
	}
	return nil
}

func (c *CostCommand) loadSQLiteStores() (*stores, error) {
	db, err := sqlite.Open(c.config.DBFile)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(db)
	if err != nil {
		return nil, err
	}

	return &stores{
		history:    store,
		catalog:    store,
		supplier:   store,
		bom:        store,
		settings:   store,
		productIDs: store.AllProductIDs,
	}, nil
}

func (c *CostCommand) loadCSVStores() (*stores, error) {
	files, err := c.resolveInputFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input files: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(files)
		fmt.Println("📂 Loading data from CSV files...")
	}

	loader := csv.NewLoader()

	items, err := loader.LoadCatalogItems(files["Items"])
	if err != nil {
		return nil, fmt.Errorf("error loading items: %w", err)
	}

	products, err := loader.LoadProducts(files["Products"])
	if err != nil {
		return nil, fmt.Errorf("error loading products: %w", err)
	}

	boms, err := loader.LoadBOMEntries(files["BOM"])
	if err != nil {
		return nil, fmt.Errorf("error loading BOM: %w", err)
	}

	var history []entities.CostRecord
	if path := files["History"]; path != "" {
		history, err = loader.LoadCostHistory(path)
		if err != nil {
			return nil, fmt.Errorf("error loading cost history: %w", err)
		}
	}

	var quotes []entities.SupplierQuote
	if path := files["Quotes"]; path != "" {
		quotes, err = loader.LoadSupplierQuotes(path)
		if err != nil {
			return nil, fmt.Errorf("error loading supplier quotes: %w", err)
		}
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Items: %d\n", len(items))
		fmt.Printf("  Products: %d\n", len(products))
		fmt.Printf("  BOMs: %d\n", len(boms))
		fmt.Printf("  Cost Records: %d\n", len(history))
		fmt.Printf("  Supplier Quotes: %d\n", len(quotes))
		fmt.Println()
	}

	// Validate BOM-catalog consistency before costing anything
	if c.config.Verbose {
		fmt.Println("🔍 Validating BOM-catalog consistency...")
	}

	validation := domainservices.NewBOMValidator().ValidateBOMCatalogConsistency(boms, items)
	if len(validation.Errors) > 0 {
		return nil, fmt.Errorf("BOM-catalog consistency validation failed: %s",
			strings.Join(validation.Errors, "; "))
	}
	if c.config.Verbose {
		for _, componentID := range validation.UnknownComponents {
			fmt.Printf("⚠️  Component %s is not in the catalog; it will cost 0\n", componentID)
		}
		if len(validation.UnknownComponents) == 0 {
			fmt.Println("✅ BOM-catalog consistency validation passed")
		}
		fmt.Println()
	}

	catalogRepo := memory.NewCatalogRepository()
	if err := catalogRepo.LoadItems(items); err != nil {
		return nil, fmt.Errorf("failed to load items into repository: %w", err)
	}
	if err := catalogRepo.LoadProducts(products); err != nil {
		return nil, fmt.Errorf("failed to load products into repository: %w", err)
	}

	historyRepo := memory.NewCostHistoryRepository()
	if err := historyRepo.LoadCostRecords(history); err != nil {
		return nil, fmt.Errorf("failed to load cost records into repository: %w", err)
	}

	supplierRepo := memory.NewSupplierPriceRepository()
	if err := supplierRepo.LoadQuotes(quotes); err != nil {
		return nil, fmt.Errorf("failed to load supplier quotes into repository: %w", err)
	}

	bomRepo := memory.NewBOMRepository()
	for productID, bom := range boms {
		if err := bomRepo.LoadBOM(productID, bom); err != nil {
			return nil, fmt.Errorf("failed to load BOM into repository: %w", err)
		}
	}

	return &stores{
		history:  historyRepo,
		catalog:  catalogRepo,
		supplier: supplierRepo,
		bom:      bomRepo,
		settings: memory.NewSettingsRepository(),
		productIDs: func() ([]entities.ItemID, error) {
			ids := catalogRepo.AllProductIDs()
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			return ids, nil
		},
	}, nil
}

// resolveInputFiles determines the actual file paths to use. History and
// quotes files are optional; costing works from catalog prices alone.
func (c *CostCommand) resolveInputFiles() (map[string]string, error) {
	var itemsPath, productsPath, bomPath, historyPath, quotesPath string

	if c.config.ScenarioDir != "" {
		itemsPath = filepath.Join(c.config.ScenarioDir, "items.csv")
		productsPath = filepath.Join(c.config.ScenarioDir, "products.csv")
		bomPath = filepath.Join(c.config.ScenarioDir, "bom.csv")
		historyPath = optionalFile(filepath.Join(c.config.ScenarioDir, "cost_history.csv"))
		quotesPath = optionalFile(filepath.Join(c.config.ScenarioDir, "supplier_quotes.csv"))
	} else {
		itemsPath = c.config.ItemsFile
		productsPath = c.config.ProductsFile
		bomPath = c.config.BOMFile
		historyPath = c.config.HistoryFile
		quotesPath = c.config.QuotesFile
	}

	files := map[string]string{
		"Items":    itemsPath,
		"Products": productsPath,
		"BOM":      bomPath,
		"History":  historyPath,
		"Quotes":   quotesPath,
	}

	for name, path := range files {
		if name == "History" || name == "Quotes" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

func optionalFile(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ""
	}
	return path
}

// printHeader prints the command header information
func (c *CostCommand) printHeader(files map[string]string) {
	fmt.Printf("🚀 Product Costing CLI\n")
	fmt.Printf("Input files:\n")
	fmt.Printf("  Items: %s\n", files["Items"])
	fmt.Printf("  Products: %s\n", files["Products"])
	fmt.Printf("  BOM: %s\n", files["BOM"])
	if files["History"] != "" {
		fmt.Printf("  Cost History: %s\n", files["History"])
	}
	if files["Quotes"] != "" {
		fmt.Printf("  Supplier Quotes: %s\n", files["Quotes"])
	}
	fmt.Printf("As-of date: %s\n", c.config.Date)
	fmt.Printf("Output format: %s\n", c.config.Format)
	fmt.Println()
}

// showHelp displays the help message
func (c *CostCommand) showHelp() {
	fmt.Printf(`Product Costing CLI - Effective-Dated BOM Cost Roll-Up

USAGE:
    costing -scenario <directory> -product <id> -date <date>
    costing -db <file> -all -date <date>
    costing -items <file> -products <file> -bom <file> ...

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -db <file>          Path to SQLite database (alternative to CSV input)
    -items <file>       Path to catalog items CSV file
    -products <file>    Path to products CSV file
    -bom <file>         Path to BOM CSV file
    -history <file>     Path to cost history CSV file (optional)
    -quotes <file>      Path to supplier quotes CSV file (optional)
    -product <id>       Product to cost
    -all                Cost every product in the catalog
    -date <date>        As-of date for cost resolution (YYYY-MM-DD, required)
    -labour-rate <c>    Labour rate in cents per hour (overrides stored rate)
    -format <fmt>       Output format: text, json, csv (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── items.csv            # Catalog items (parts and fasteners)
    ├── products.csv         # Product master data with labour time
    ├── bom.csv              # Bill of Materials
    ├── cost_history.csv     # Effective-dated cost records (optional)
    └── supplier_quotes.csv  # Supplier quotes (optional)

CSV FILE FORMATS:

items.csv:
    item_id,description,kind,cost_price_cents,cost_price_source,suppliers,is_serialized
    FRAME_PLATE,Frame Plate,Part,500,Manual,,false
    BEARING_608,608 Ball Bearing,Part,450,SupplierLowest,Acme;Bolt&Co,false

products.csv:
    product_id,description,labour_hours,labour_minutes
    WIDGET,Widget Assembly,1,30

bom.csv:
    product_id,component_id,component_kind,quantity_used
    WIDGET,FRAME_PLATE,Part,3
    WIDGET,BOLT_M6,Fastener,10

cost_history.csv:
    item_id,effective_date,cost_price_cents
    STEEL_ROD,2025-01-01,1000

supplier_quotes.csv:
    item_id,supplier,cost_price_cents,effective_date
    BEARING_608,Acme,420,2025-01-01

EXAMPLES:
    # Cost one product from a scenario directory
    costing -scenario examples/workshop -product WIDGET -date 2025-06-01

    # Cost the whole catalog from a SQLite database
    costing -db workshop.db -all -date 2025-06-01 -verbose

    # Generate JSON output with a labour rate override
    costing -scenario examples/workshop -all -date 2025-06-01 -labour-rate 6500 -format json
`)
}
