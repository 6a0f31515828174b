package memory

import (
	"fmt"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/repositories"
)

// StoreRepository provides in-memory store storage.
// Registration order is preserved; it is the tie-break order for comparisons.
type StoreRepository struct {
	stores []*entities.Store
}

// NewStoreRepository creates a new in-memory store repository
func NewStoreRepository() *StoreRepository {
	return &StoreRepository{
		stores: []*entities.Store{},
	}
}

// Verify interface compliance
var _ repositories.StoreRepository = (*StoreRepository)(nil)

// Register adds a store to the repository
func (r *StoreRepository) Register(store *entities.Store) error {
	if store == nil {
		return fmt.Errorf("store cannot be nil")
	}
	r.stores = append(r.stores, store)
	return nil
}

// GetStores returns all registered stores in registration order
func (r *StoreRepository) GetStores() ([]*entities.Store, error) {
	stores := make([]*entities.Store, len(r.stores))
	copy(stores, r.stores)
	return stores, nil
}
