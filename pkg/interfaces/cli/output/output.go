package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/makerops/costing/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate renders product cost results in the specified format
func Generate(results []*dto.ProductCost, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(results)
	case "json":
		return generateJSONOutput(results)
	case "csv":
		return generateCSVOutput(results)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(results []*dto.ProductCost) error {
	for _, result := range results {
		fmt.Printf("📊 %s (as of %s)\n", result.ProductID, result.AsOf.Format("2006-01-02"))

		if len(result.Breakdown) == 0 {
			fmt.Printf("  (empty BOM, no labour)\n")
		} else {
			fmt.Printf("  %-20s %-10s %-12s %-12s %-12s\n",
				"Component", "Kind", "Unit Cost", "Quantity", "Subtotal")
			fmt.Printf("  %-20s %-10s %-12s %-12s %-12s\n",
				"--------------------", "----------", "------------", "------------", "------------")

			for _, line := range result.Breakdown {
				fmt.Printf("  %-20s %-10s %-12s %-12s %-12s\n",
					line.ComponentID,
					line.Kind,
					line.UnitCost,
					line.Quantity,
					line.Subtotal)
			}
		}

		fmt.Printf("  Total: %s\n\n", result.TotalCost)
	}

	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(results []*dto.ProductCost) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// generateCSVOutput creates one CSV row per breakdown line
func generateCSVOutput(results []*dto.ProductCost) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"product_id", "as_of", "component_id", "kind", "unit_cost_cents", "quantity", "subtotal_cents", "total_cost_cents"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		for _, line := range result.Breakdown {
			row := []string{
				string(result.ProductID),
				result.AsOf.Format("2006-01-02"),
				string(line.ComponentID),
				line.Kind.String(),
				fmt.Sprintf("%d", line.UnitCost),
				line.Quantity.String(),
				fmt.Sprintf("%d", line.Subtotal),
				fmt.Sprintf("%d", result.TotalCost),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	return nil
}
