package repositories

import "github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"

// StoreRepository provides access to registered stores
type StoreRepository interface {
	Register(store *entities.Store) error
	GetStores() ([]*entities.Store, error)
}
