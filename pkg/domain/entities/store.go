package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Store represents a supplier with unit prices for named items
type Store struct {
	Name   string
	prices map[ItemName]decimal.Decimal
}

// NewStore creates a store with an empty price list
func NewStore(name string) *Store {
	return &Store{
		Name:   name,
		prices: make(map[ItemName]decimal.Decimal),
	}
}

// SetPrice sets the unit price for an item. Setting a price for an item that
// already has one overwrites it. A negative price is rejected and leaves the
// price list unchanged. A zero price is valid.
func (s *Store) SetPrice(item ItemName, price decimal.Decimal) error {
	if item == "" {
		return ErrEmptyItemName
	}
	if price.Sign() < 0 {
		return fmt.Errorf("%w: got %s for %q", ErrInvalidPrice, price, item)
	}
	s.prices[item] = price
	return nil
}

// PriceOf returns the unit price for an item. The second return value reports
// whether the store carries the item at all, so callers can tell an item that
// costs nothing apart from an item with no price on file.
func (s *Store) PriceOf(item ItemName) (decimal.Decimal, bool) {
	price, ok := s.prices[item]
	return price, ok
}

// Prices returns a snapshot copy of the current price list
func (s *Store) Prices() map[ItemName]decimal.Decimal {
	snapshot := make(map[ItemName]decimal.Decimal, len(s.prices))
	for item, price := range s.prices {
		snapshot[item] = price
	}
	return snapshot
}
