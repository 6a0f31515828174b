package entities

import "errors"

var (
	// ErrInvalidQuantity is returned when adding a non-positive quantity to an office.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPrice is returned when setting a negative price on a store.
	ErrInvalidPrice = errors.New("price cannot be negative")

	// ErrEmptyItemName is returned when an item name is blank.
	ErrEmptyItemName = errors.New("item name cannot be empty")
)
