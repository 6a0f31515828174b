package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/services/shopping"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/repositories/memory"
)

func main() {
	officeRepo := memory.NewOfficeRepository()
	storeRepo := memory.NewStoreRepository()
	service := shopping.NewShoppingService(officeRepo, storeRepo)

	// Two offices with overlapping supply needs
	newYork := entities.NewOffice("Office 1 - New York")
	mustAdd(newYork, "Pens", "10")
	mustAdd(newYork, "Paper Reams", "5")

	boston := entities.NewOffice("Office 2 - Boston")
	mustAdd(boston, "Pens", "15")
	mustAdd(boston, "Folders", "20")

	for _, office := range []*entities.Office{newYork, boston} {
		if err := service.RegisterOffice(office); err != nil {
			log.Fatalf("register office: %v", err)
		}
	}

	// Two stores with different price lists
	depot := entities.NewStore("Office Depot")
	mustPrice(depot, "Pens", "1.50")
	mustPrice(depot, "Paper Reams", "8.00")
	mustPrice(depot, "Folders", "0.50")

	staples := entities.NewStore("Staples")
	mustPrice(staples, "Pens", "1.25")
	mustPrice(staples, "Paper Reams", "8.50")
	mustPrice(staples, "Folders", "0.60")

	for _, store := range []*entities.Store{depot, staples} {
		if err := service.RegisterStore(store); err != nil {
			log.Fatalf("register store: %v", err)
		}
	}

	consolidated, err := service.ConsolidatedList()
	if err != nil {
		log.Fatalf("consolidate: %v", err)
	}

	fmt.Println("Consolidated shopping list:")
	for _, item := range consolidated.Items() {
		fmt.Printf("  %-15s %s\n", item, consolidated[item])
	}

	cheapest, err := service.Cheapest()
	if err != nil {
		log.Fatalf("find cheapest: %v", err)
	}

	// Staples wins at $85.75 against Office Depot's $87.50
	fmt.Printf("\nCheapest store: %s ($%s)\n", cheapest.StoreName, cheapest.Total.StringFixed(2))
	for _, line := range cheapest.Breakdown {
		fmt.Printf("  %-15s %s x $%s = $%s\n",
			line.Item, line.Quantity, line.UnitPrice.StringFixed(2), line.LineCost.StringFixed(2))
	}
}

func mustAdd(office *entities.Office, item entities.ItemName, quantity string) {
	if err := office.AddItem(item, decimal.RequireFromString(quantity)); err != nil {
		log.Fatalf("add item: %v", err)
	}
}

func mustPrice(store *entities.Store, item entities.ItemName, price string) {
	if err := store.SetPrice(item, decimal.RequireFromString(price)); err != nil {
		log.Fatalf("set price: %v", err)
	}
}
