package events

import (
	"github.com/shopspring/decimal"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

const (
	OfficeRegisteredEvent = "office.registered"
	StoreRegisteredEvent  = "store.registered"

	SuppliesMergedEvent   = "supplies.merged"
	ComparisonRunEvent    = "comparison.run"
	CheapestSelectedEvent = "cheapest.selected"
)

type OfficeRegistered struct {
	OfficeName string `json:"office_name"`
	ItemCount  int    `json:"item_count"`
}

type StoreRegistered struct {
	StoreName  string `json:"store_name"`
	PriceCount int    `json:"price_count"`
}

type SuppliesMerged struct {
	OfficeCount int `json:"office_count"`
	ItemCount   int `json:"item_count"`
}

type ComparisonRun struct {
	StoreCount int `json:"store_count"`
}

type CheapestSelected struct {
	StoreName string          `json:"store_name"`
	Total     decimal.Decimal `json:"total"`
}

func NewOfficeRegisteredEvent(office *entities.Office) Event {
	return NewEvent(OfficeRegisteredEvent, office.Name, OfficeRegistered{
		OfficeName: office.Name,
		ItemCount:  len(office.Supplies()),
	})
}

func NewStoreRegisteredEvent(store *entities.Store) Event {
	return NewEvent(StoreRegisteredEvent, store.Name, StoreRegistered{
		StoreName:  store.Name,
		PriceCount: len(store.Prices()),
	})
}

func NewSuppliesMergedEvent(officeCount, itemCount int) Event {
	return NewEvent(SuppliesMergedEvent, "shopping-list", SuppliesMerged{
		OfficeCount: officeCount,
		ItemCount:   itemCount,
	})
}

func NewComparisonRunEvent(storeCount int) Event {
	return NewEvent(ComparisonRunEvent, "shopping-list", ComparisonRun{
		StoreCount: storeCount,
	})
}

func NewCheapestSelectedEvent(storeName string, total decimal.Decimal) Event {
	return NewEvent(CheapestSelectedEvent, "shopping-list", CheapestSelected{
		StoreName: storeName,
		Total:     total,
	})
}
