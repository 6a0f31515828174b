package shopping

import (
	"github.com/shopspring/decimal"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/dto"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

// CostEvaluator prices a consolidated shopping list against stores
type CostEvaluator struct{}

// NewCostEvaluator creates a new cost evaluator
func NewCostEvaluator() *CostEvaluator {
	return &CostEvaluator{}
}

// Evaluate prices the consolidated list at one store. The breakdown is ordered
// alphabetically by item name. An item the store does not carry contributes
// zero to the total and is flagged on its line; it never aborts evaluation,
// which means a store missing items can still win a comparison.
func (e *CostEvaluator) Evaluate(consolidated dto.ConsolidatedList, store *entities.Store) dto.ComparisonResult {
	result := dto.ComparisonResult{
		StoreName: store.Name,
		Total:     decimal.Zero,
		Breakdown: make([]dto.BreakdownLine, 0, len(consolidated)),
	}

	for _, item := range consolidated.Items() {
		quantity := consolidated[item]

		price, ok := store.PriceOf(item)
		if !ok {
			result.Breakdown = append(result.Breakdown, dto.BreakdownLine{
				Item:     item,
				Quantity: quantity,
				Unpriced: true,
			})
			result.UnpricedItems = append(result.UnpricedItems, item)
			continue
		}

		lineCost := price.Mul(quantity)
		result.Breakdown = append(result.Breakdown, dto.BreakdownLine{
			Item:      item,
			Quantity:  quantity,
			UnitPrice: price,
			LineCost:  lineCost,
		})
		result.Total = result.Total.Add(lineCost)
	}

	return result
}

// Compare evaluates the consolidated list at every store. The result map is
// keyed by store name; a duplicate store name overwrites the earlier entry.
func (e *CostEvaluator) Compare(consolidated dto.ConsolidatedList, stores []*entities.Store) map[string]dto.ComparisonResult {
	comparison := make(map[string]dto.ComparisonResult, len(stores))
	for _, store := range stores {
		comparison[store.Name] = e.Evaluate(consolidated, store)
	}
	return comparison
}

// FindCheapest returns the store with the lowest total for the consolidated
// list. Equal totals are broken in favor of the earliest store in the input
// order. An empty store list returns ErrNoStores.
func (e *CostEvaluator) FindCheapest(consolidated dto.ConsolidatedList, stores []*entities.Store) (*dto.CheapestResult, error) {
	if len(stores) == 0 {
		return nil, ErrNoStores
	}

	var cheapest dto.ComparisonResult
	for i, store := range stores {
		result := e.Evaluate(consolidated, store)
		if i == 0 || result.Total.LessThan(cheapest.Total) {
			cheapest = result
		}
	}

	return &dto.CheapestResult{
		StoreName: cheapest.StoreName,
		Total:     cheapest.Total,
		Breakdown: cheapest.Breakdown,
	}, nil
}
