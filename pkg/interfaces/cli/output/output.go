package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate renders the shopping report in the specified format
func Generate(report *dto.ShoppingReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report)
	case "json":
		return generateJSONOutput(report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.ShoppingReport) error {
	fmt.Printf("🛒 Consolidated Shopping List\n")
	fmt.Printf("=============================\n\n")

	if len(report.Consolidated) == 0 {
		fmt.Printf("No supplies requested.\n\n")
	} else {
		fmt.Printf("%-20s %10s\n", "Item", "Quantity")
		fmt.Printf("%-20s %10s\n", "--------------------", "----------")
		for _, item := range report.Consolidated.Items() {
			fmt.Printf("%-20s %10s\n", item, report.Consolidated[item])
		}
		fmt.Println()
	}

	fmt.Printf("💰 Price Comparison by Store\n")
	fmt.Printf("============================\n\n")

	if len(report.Comparison) == 0 {
		fmt.Printf("No stores registered.\n\n")
	} else {
		names := make([]string, 0, len(report.Comparison))
		for name := range report.Comparison {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			result := report.Comparison[name]
			fmt.Printf("%-20s $%s\n", name, result.Total.StringFixed(2))
			if len(result.UnpricedItems) > 0 {
				unpriced := make([]string, len(result.UnpricedItems))
				for i, item := range result.UnpricedItems {
					unpriced[i] = string(item)
				}
				fmt.Printf("  ⚠️  unpriced: %s\n", strings.Join(unpriced, ", "))
			}
		}
		fmt.Println()
	}

	fmt.Printf("🏆 Cheapest Option\n")
	fmt.Printf("==================\n\n")

	if report.Cheapest == nil {
		fmt.Printf("No stores registered; nothing to compare.\n")
		return nil
	}

	fmt.Printf("Store: %s\n", report.Cheapest.StoreName)
	fmt.Printf("Total: $%s\n\n", report.Cheapest.Total.StringFixed(2))

	if len(report.Cheapest.Breakdown) > 0 {
		fmt.Printf("%-20s %10s %12s %12s\n", "Item", "Quantity", "Unit Price", "Line Cost")
		fmt.Printf("%-20s %10s %12s %12s\n", "--------------------", "----------", "------------", "------------")
		for _, line := range report.Cheapest.Breakdown {
			if line.Unpriced {
				fmt.Printf("%-20s %10s %12s %12s\n", line.Item, line.Quantity, "unpriced", "-")
				continue
			}
			fmt.Printf("%-20s %10s %12s %12s\n",
				line.Item,
				line.Quantity,
				"$"+line.UnitPrice.StringFixed(2),
				"$"+line.LineCost.StringFixed(2))
		}
	}

	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(report *dto.ShoppingReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
