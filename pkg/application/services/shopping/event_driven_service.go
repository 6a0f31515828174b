package shopping

import (
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/dto"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/repositories"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/events"
)

// EventDrivenShoppingService wraps ShoppingService and appends an audit event
// for every registration and comparison run. Append failures do not fail the
// wrapped operation.
type EventDrivenShoppingService struct {
	service    *ShoppingService
	eventStore events.EventStore
}

// NewEventDrivenShoppingService creates a shopping service that records an
// audit trail in the given event store
func NewEventDrivenShoppingService(
	officeRepo repositories.OfficeRepository,
	storeRepo repositories.StoreRepository,
	eventStore events.EventStore,
) *EventDrivenShoppingService {
	return &EventDrivenShoppingService{
		service:    NewShoppingService(officeRepo, storeRepo),
		eventStore: eventStore,
	}
}

// RegisterOffice registers a demand source and records the registration
func (s *EventDrivenShoppingService) RegisterOffice(office *entities.Office) error {
	if err := s.service.RegisterOffice(office); err != nil {
		return err
	}
	_ = s.eventStore.AppendEvent(office.Name, events.NewOfficeRegisteredEvent(office))
	return nil
}

// RegisterStore registers a price catalog and records the registration
func (s *EventDrivenShoppingService) RegisterStore(store *entities.Store) error {
	if err := s.service.RegisterStore(store); err != nil {
		return err
	}
	_ = s.eventStore.AppendEvent(store.Name, events.NewStoreRegisteredEvent(store))
	return nil
}

// ConsolidatedList merges supplies across all registered offices
func (s *EventDrivenShoppingService) ConsolidatedList() (dto.ConsolidatedList, error) {
	return s.service.ConsolidatedList()
}

// Comparison prices the consolidated list at every registered store
func (s *EventDrivenShoppingService) Comparison() (map[string]dto.ComparisonResult, error) {
	return s.service.Comparison()
}

// Cheapest returns the minimum-cost store and records the selection
func (s *EventDrivenShoppingService) Cheapest() (*dto.CheapestResult, error) {
	cheapest, err := s.service.Cheapest()
	if err != nil {
		return nil, err
	}
	_ = s.eventStore.AppendEvent("shopping-list", events.NewCheapestSelectedEvent(cheapest.StoreName, cheapest.Total))
	return cheapest, nil
}

// Report runs the full merge-and-compare pass and records the run
func (s *EventDrivenShoppingService) Report() (*dto.ShoppingReport, error) {
	report, err := s.service.Report()
	if err != nil {
		return nil, err
	}

	_ = s.eventStore.AppendEvent("shopping-list", events.NewSuppliesMergedEvent(s.officeCount(), len(report.Consolidated)))
	_ = s.eventStore.AppendEvent("shopping-list", events.NewComparisonRunEvent(len(report.Comparison)))
	if report.Cheapest != nil {
		_ = s.eventStore.AppendEvent("shopping-list", events.NewCheapestSelectedEvent(report.Cheapest.StoreName, report.Cheapest.Total))
	}

	return report, nil
}

func (s *EventDrivenShoppingService) officeCount() int {
	offices, err := s.service.officeRepo.GetOffices()
	if err != nil {
		return 0
	}
	return len(offices)
}
