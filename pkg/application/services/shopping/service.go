package shopping

import (
	"errors"
	"fmt"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/dto"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/repositories"
)

// ShoppingService coordinates offices, stores, aggregation, and cost
// comparison behind the repository interfaces. It holds no evaluation state
// of its own; every query merges and prices from scratch.
type ShoppingService struct {
	officeRepo repositories.OfficeRepository
	storeRepo  repositories.StoreRepository
	aggregator *Aggregator
	evaluator  *CostEvaluator
}

// NewShoppingService creates a shopping service over the provided repositories
func NewShoppingService(
	officeRepo repositories.OfficeRepository,
	storeRepo repositories.StoreRepository,
) *ShoppingService {
	return &ShoppingService{
		officeRepo: officeRepo,
		storeRepo:  storeRepo,
		aggregator: NewAggregator(),
		evaluator:  NewCostEvaluator(),
	}
}

// RegisterOffice registers a demand source. Registration order is preserved.
func (s *ShoppingService) RegisterOffice(office *entities.Office) error {
	if err := s.officeRepo.Register(office); err != nil {
		return fmt.Errorf("failed to register office: %w", err)
	}
	return nil
}

// RegisterStore registers a price catalog. Registration order is preserved
// and is the tie-break order for FindCheapest.
func (s *ShoppingService) RegisterStore(store *entities.Store) error {
	if err := s.storeRepo.Register(store); err != nil {
		return fmt.Errorf("failed to register store: %w", err)
	}
	return nil
}

// ConsolidatedList merges supplies across all registered offices
func (s *ShoppingService) ConsolidatedList() (dto.ConsolidatedList, error) {
	offices, err := s.officeRepo.GetOffices()
	if err != nil {
		return nil, fmt.Errorf("failed to load offices: %w", err)
	}
	return s.aggregator.Merge(offices), nil
}

// Comparison prices the consolidated list at every registered store
func (s *ShoppingService) Comparison() (map[string]dto.ComparisonResult, error) {
	consolidated, err := s.ConsolidatedList()
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	return s.evaluator.Compare(consolidated, stores), nil
}

// Cheapest returns the minimum-cost store for the consolidated list. It
// returns ErrNoStores when no stores are registered.
func (s *ShoppingService) Cheapest() (*dto.CheapestResult, error) {
	consolidated, err := s.ConsolidatedList()
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	return s.evaluator.FindCheapest(consolidated, stores)
}

// Report runs the full merge-and-compare pass and bundles the output for
// rendering. With zero stores the report carries an empty comparison and a
// nil cheapest result instead of failing.
func (s *ShoppingService) Report() (*dto.ShoppingReport, error) {
	consolidated, err := s.ConsolidatedList()
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	report := &dto.ShoppingReport{
		Consolidated: consolidated,
		Comparison:   s.evaluator.Compare(consolidated, stores),
	}

	cheapest, err := s.evaluator.FindCheapest(consolidated, stores)
	if err != nil {
		if errors.Is(err, ErrNoStores) {
			return report, nil
		}
		return nil, err
	}
	report.Cheapest = cheapest

	return report, nil
}
