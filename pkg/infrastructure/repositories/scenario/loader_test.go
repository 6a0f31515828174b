package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeScenario(t, `
offices:
  - name: Office 1 - New York
    items:
      Pens: 10
      Paper Reams: 5
  - name: Office 2 - Boston
    items:
      Pens: 15
      Folders: 20
stores:
  - name: Office Depot
    prices:
      Pens: 1.50
      Paper Reams: 8.00
      Folders: 0.50
  - name: Staples
    prices:
      Pens: 1.25
`)

	offices, stores, err := NewLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, offices, 2)
	assert.Equal(t, "Office 1 - New York", offices[0].Name)
	assert.Equal(t, "Office 2 - Boston", offices[1].Name)
	assert.True(t, offices[0].Supplies()["Pens"].Equal(decimal.NewFromInt(10)))
	assert.True(t, offices[1].Supplies()["Folders"].Equal(decimal.NewFromInt(20)))

	require.Len(t, stores, 2)
	assert.Equal(t, "Office Depot", stores[0].Name)
	price, ok := stores[0].PriceOf("Pens")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("1.50")))

	_, ok = stores[1].PriceOf("Folders")
	assert.False(t, ok)
}

func TestLoader_Load_PreservesExactDecimals(t *testing.T) {
	path := writeScenario(t, `
stores:
  - name: Penny Store
    prices:
      Widget: 0.10
`)

	_, stores, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, stores, 1)

	price, ok := stores[0].PriceOf("Widget")
	require.True(t, ok)
	assert.Equal(t, "0.10", price.StringFixed(2))
	assert.True(t, price.Equal(decimal.RequireFromString("0.10")))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, _, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "offices: [unterminated")

	_, _, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "failed to parse scenario file")
}

func TestLoader_Load_InvalidQuantity(t *testing.T) {
	path := writeScenario(t, `
offices:
  - name: Office 1
    items:
      Pens: lots
`)

	_, _, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "invalid quantity")
}

func TestLoader_Load_RejectsNonPositiveQuantity(t *testing.T) {
	path := writeScenario(t, `
offices:
  - name: Office 1
    items:
      Pens: 0
`)

	_, _, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "quantity must be positive")
}

func TestLoader_Load_RejectsEmptyOfficeName(t *testing.T) {
	path := writeScenario(t, `
offices:
  - items:
      Pens: 5
`)

	_, _, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "office name cannot be empty")
}

func TestLoader_Load_EmptyScenario(t *testing.T) {
	path := writeScenario(t, "{}")

	offices, stores, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, offices)
	assert.Empty(t, stores)
}
