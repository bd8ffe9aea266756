package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/makerops/costing/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		dbFile       = flag.String("db", "", "Path to SQLite database")
		itemsFile    = flag.String("items", "", "Path to catalog items CSV file")
		productsFile = flag.String("products", "", "Path to products CSV file")
		bomFile      = flag.String("bom", "", "Path to BOM CSV file")
		historyFile  = flag.String("history", "", "Path to cost history CSV file")
		quotesFile   = flag.String("quotes", "", "Path to supplier quotes CSV file")
		productID    = flag.String("product", "", "Product to cost")
		allProducts  = flag.Bool("all", false, "Cost every product in the catalog")
		date         = flag.String("date", "", "As-of date for cost resolution (YYYY-MM-DD)")
		labourRate   = flag.Int64("labour-rate", -1, "Labour rate in cents per hour")
		format       = flag.String("format", "text", "Output format: text, json, csv")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir:  *scenarioDir,
		DBFile:       *dbFile,
		ItemsFile:    *itemsFile,
		ProductsFile: *productsFile,
		BOMFile:      *bomFile,
		HistoryFile:  *historyFile,
		QuotesFile:   *quotesFile,
		ProductID:    *productID,
		AllProducts:  *allProducts,
		Date:         *date,
		LabourRate:   *labourRate,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewCostCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
