package dto

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

// ConsolidatedList is demand summed across all offices, keyed by item name.
// It is produced fresh on every merge and never stored.
type ConsolidatedList map[entities.ItemName]decimal.Decimal

// Items returns the item names in alphabetical order
func (c ConsolidatedList) Items() []entities.ItemName {
	items := make([]entities.ItemName, 0, len(c))
	for item := range c {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// BreakdownLine is one item of a store comparison. An unpriced line carries a
// zero unit price and line cost and has Unpriced set.
type BreakdownLine struct {
	Item      entities.ItemName `json:"item"`
	Quantity  decimal.Decimal   `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	LineCost  decimal.Decimal   `json:"line_cost"`
	Unpriced  bool              `json:"unpriced,omitempty"`
}

// ComparisonResult is the cost of the consolidated list at one store
type ComparisonResult struct {
	StoreName     string              `json:"store_name"`
	Total         decimal.Decimal     `json:"total"`
	Breakdown     []BreakdownLine     `json:"breakdown"`
	UnpricedItems []entities.ItemName `json:"unpriced_items,omitempty"`
}

// CheapestResult identifies the minimum-cost store for the consolidated list
type CheapestResult struct {
	StoreName string          `json:"store_name"`
	Total     decimal.Decimal `json:"total"`
	Breakdown []BreakdownLine `json:"breakdown"`
}

// ShoppingReport bundles the full output of a comparison run for rendering.
// Cheapest is nil when no stores are registered.
type ShoppingReport struct {
	Consolidated ConsolidatedList            `json:"consolidated_list"`
	Comparison   map[string]ComparisonResult `json:"comparison"`
	Cheapest     *CheapestResult             `json:"cheapest,omitempty"`
}
