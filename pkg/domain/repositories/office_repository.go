package repositories

import "github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"

// OfficeRepository provides access to registered offices
type OfficeRepository interface {
	Register(office *entities.Office) error
	GetOffices() ([]*entities.Office, error)
}
