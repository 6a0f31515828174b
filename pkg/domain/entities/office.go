package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemName identifies a supply item. Matching is exact and case-sensitive.
type ItemName string

// Office represents a demand source with its requested supplies
type Office struct {
	Name     string
	supplies map[ItemName]decimal.Decimal
}

// NewOffice creates an office with an empty supply list
func NewOffice(name string) *Office {
	return &Office{
		Name:     name,
		supplies: make(map[ItemName]decimal.Decimal),
	}
}

// AddItem accumulates a requested quantity for an item. Adding the same item
// twice sums the quantities rather than overwriting. A non-positive quantity
// is rejected and leaves the supply list unchanged.
func (o *Office) AddItem(item ItemName, quantity decimal.Decimal) error {
	if item == "" {
		return ErrEmptyItemName
	}
	if quantity.Sign() <= 0 {
		return fmt.Errorf("%w: got %s for %q", ErrInvalidQuantity, quantity, item)
	}
	o.supplies[item] = o.supplies[item].Add(quantity)
	return nil
}

// Supplies returns a snapshot copy of the current supply list
func (o *Office) Supplies() map[ItemName]decimal.Decimal {
	snapshot := make(map[ItemName]decimal.Decimal, len(o.supplies))
	for item, quantity := range o.supplies {
		snapshot[item] = quantity
	}
	return snapshot
}
