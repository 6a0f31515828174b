package shopping

import (
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/dto"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

// Aggregator merges office supply lists into one consolidated shopping list
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Merge sums requested quantities across all offices by exact item name.
// Summation is commutative, so office order does not affect the result.
// An empty input yields an empty consolidated list, not an error.
func (a *Aggregator) Merge(offices []*entities.Office) dto.ConsolidatedList {
	merged := make(dto.ConsolidatedList)
	for _, office := range offices {
		for item, quantity := range office.Supplies() {
			merged[item] = merged[item].Add(quantity)
		}
	}
	return merged
}
