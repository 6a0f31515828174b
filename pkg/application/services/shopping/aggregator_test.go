package shopping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

func buildOffice(t *testing.T, name string, items map[entities.ItemName]int64) *entities.Office {
	t.Helper()
	office := entities.NewOffice(name)
	for item, quantity := range items {
		require.NoError(t, office.AddItem(item, decimal.NewFromInt(quantity)))
	}
	return office
}

func TestAggregator_Merge_SumsQuantitiesAcrossOffices(t *testing.T) {
	officeA := buildOffice(t, "Office A", map[entities.ItemName]int64{"Pens": 10, "Paper Reams": 5})
	officeB := buildOffice(t, "Office B", map[entities.ItemName]int64{"Pens": 15, "Folders": 20})

	merged := NewAggregator().Merge([]*entities.Office{officeA, officeB})

	require.Len(t, merged, 3)
	assert.True(t, merged["Pens"].Equal(decimal.NewFromInt(25)))
	assert.True(t, merged["Paper Reams"].Equal(decimal.NewFromInt(5)))
	assert.True(t, merged["Folders"].Equal(decimal.NewFromInt(20)))
}

func TestAggregator_Merge_EmptyInput(t *testing.T) {
	aggregator := NewAggregator()

	assert.Empty(t, aggregator.Merge(nil))
	assert.Empty(t, aggregator.Merge([]*entities.Office{}))
}

func TestAggregator_Merge_OfficeWithNoItems(t *testing.T) {
	officeA := buildOffice(t, "Office A", map[entities.ItemName]int64{"Pens": 10})
	empty := entities.NewOffice("Empty Office")

	merged := NewAggregator().Merge([]*entities.Office{officeA, empty})

	require.Len(t, merged, 1)
	assert.True(t, merged["Pens"].Equal(decimal.NewFromInt(10)))
}

func TestAggregator_Merge_OrderIndependent(t *testing.T) {
	officeA := buildOffice(t, "Office A", map[entities.ItemName]int64{"Pens": 10, "Paper Reams": 5})
	officeB := buildOffice(t, "Office B", map[entities.ItemName]int64{"Pens": 15, "Folders": 20})
	officeC := buildOffice(t, "Office C", map[entities.ItemName]int64{"Folders": 1, "Pens": 2})

	aggregator := NewAggregator()
	forward := aggregator.Merge([]*entities.Office{officeA, officeB, officeC})
	reverse := aggregator.Merge([]*entities.Office{officeC, officeB, officeA})

	require.Equal(t, len(forward), len(reverse))
	for item, quantity := range forward {
		assert.True(t, reverse[item].Equal(quantity), "quantity mismatch for %s", item)
	}
}

func TestAggregator_Merge_DoesNotMutateOffices(t *testing.T) {
	officeA := buildOffice(t, "Office A", map[entities.ItemName]int64{"Pens": 10})

	merged := NewAggregator().Merge([]*entities.Office{officeA})
	merged["Pens"] = decimal.NewFromInt(99)
	merged["Injected"] = decimal.NewFromInt(1)

	supplies := officeA.Supplies()
	require.Len(t, supplies, 1)
	assert.True(t, supplies["Pens"].Equal(decimal.NewFromInt(10)))
}

func TestConsolidatedList_Items_Alphabetical(t *testing.T) {
	officeA := buildOffice(t, "Office A", map[entities.ItemName]int64{"Pens": 10, "Paper Reams": 5})
	officeB := buildOffice(t, "Office B", map[entities.ItemName]int64{"Pens": 15, "Folders": 20})

	merged := NewAggregator().Merge([]*entities.Office{officeA, officeB})

	assert.Equal(t, []entities.ItemName{"Folders", "Paper Reams", "Pens"}, merged.Items())
}
