package testing

import (
	"github.com/shopspring/decimal"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/repositories/memory"
)

// BuildOfficeSupplyTestData builds the four-office, three-store office supply
// scenario used across service and integration tests.
//
// Merged demand: Pens 30, Paper Reams 15, Staplers 5, Folders 30, Markers 20.
// Totals: Office Depot 245.00, Staples 240.50, Amazon 212.00.
func BuildOfficeSupplyTestData() (*memory.OfficeRepository, *memory.StoreRepository) {
	officeRepo := memory.NewOfficeRepository()
	storeRepo := memory.NewStoreRepository()

	offices := []struct {
		name  string
		items map[entities.ItemName]int64
	}{
		{"Office 1 - New York", map[entities.ItemName]int64{"Pens": 10, "Paper Reams": 5, "Staplers": 2}},
		{"Office 2 - Boston", map[entities.ItemName]int64{"Pens": 15, "Paper Reams": 3, "Folders": 20}},
		{"Office 3 - Chicago", map[entities.ItemName]int64{"Paper Reams": 7, "Folders": 10, "Markers": 8}},
		{"Office 4 - Seattle", map[entities.ItemName]int64{"Staplers": 3, "Markers": 12, "Pens": 5}},
	}

	for _, entry := range offices {
		office := entities.NewOffice(entry.name)
		for item, quantity := range entry.items {
			if err := office.AddItem(item, decimal.NewFromInt(quantity)); err != nil {
				panic(err)
			}
		}
		if err := officeRepo.Register(office); err != nil {
			panic(err)
		}
	}

	stores := []struct {
		name   string
		prices map[entities.ItemName]string
	}{
		{"Office Depot", map[entities.ItemName]string{"Pens": "1.50", "Paper Reams": "8.00", "Staplers": "5.00", "Folders": "0.50", "Markers": "2.00"}},
		{"Staples", map[entities.ItemName]string{"Pens": "1.25", "Paper Reams": "8.50", "Staplers": "4.50", "Folders": "0.60", "Markers": "1.75"}},
		{"Amazon", map[entities.ItemName]string{"Pens": "1.00", "Paper Reams": "7.50", "Staplers": "4.00", "Folders": "0.45", "Markers": "1.80"}},
	}

	for _, entry := range stores {
		store := entities.NewStore(entry.name)
		for item, price := range entry.prices {
			if err := store.SetPrice(item, decimal.RequireFromString(price)); err != nil {
				panic(err)
			}
		}
		if err := storeRepo.Register(store); err != nil {
			panic(err)
		}
	}

	return officeRepo, storeRepo
}
