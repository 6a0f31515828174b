package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetPrice_AndPriceOf(t *testing.T) {
	store := NewStore("Test Store")

	require.NoError(t, store.SetPrice("Pens", decimal.RequireFromString("1.50")))

	price, ok := store.PriceOf("Pens")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("1.50")))
}

func TestStore_SetPrice_OverwritesExistingPrice(t *testing.T) {
	store := NewStore("Test Store")

	require.NoError(t, store.SetPrice("Pens", decimal.RequireFromString("1.50")))
	require.NoError(t, store.SetPrice("Pens", decimal.RequireFromString("1.25")))

	price, ok := store.PriceOf("Pens")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("1.25")))
}

func TestStore_SetPrice_RejectsNegativePrice(t *testing.T) {
	store := NewStore("Test Store")
	require.NoError(t, store.SetPrice("Pens", decimal.RequireFromString("1.50")))

	err := store.SetPrice("Pens", decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// Prior state must be untouched by rejected calls
	price, ok := store.PriceOf("Pens")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("1.50")))
}

func TestStore_SetPrice_ZeroPriceIsValid(t *testing.T) {
	store := NewStore("Test Store")

	require.NoError(t, store.SetPrice("Promo Pens", decimal.Zero))

	price, ok := store.PriceOf("Promo Pens")
	assert.True(t, ok)
	assert.True(t, price.IsZero())
}

func TestStore_PriceOf_DistinguishesAbsenceFromZero(t *testing.T) {
	store := NewStore("Test Store")
	require.NoError(t, store.SetPrice("Promo Pens", decimal.Zero))

	_, ok := store.PriceOf("Promo Pens")
	assert.True(t, ok, "an item that costs nothing is still priced")

	_, ok = store.PriceOf("Nonexistent Item")
	assert.False(t, ok, "an item with no price on file is not priced")
}

func TestStore_SetPrice_RejectsEmptyItemName(t *testing.T) {
	store := NewStore("Test Store")

	err := store.SetPrice("", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrEmptyItemName)
	assert.Empty(t, store.Prices())
}

func TestStore_Prices_ReturnsSnapshot(t *testing.T) {
	store := NewStore("Test Store")
	require.NoError(t, store.SetPrice("Pens", decimal.RequireFromString("1.50")))

	snapshot := store.Prices()
	snapshot["Pens"] = decimal.NewFromInt(99)

	price, ok := store.PriceOf("Pens")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("1.50")))
}
