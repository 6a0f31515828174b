package memory

import (
	"fmt"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/repositories"
)

// OfficeRepository provides in-memory office storage.
// Registration order is preserved.
type OfficeRepository struct {
	offices []*entities.Office
}

// NewOfficeRepository creates a new in-memory office repository
func NewOfficeRepository() *OfficeRepository {
	return &OfficeRepository{
		offices: []*entities.Office{},
	}
}

// Verify interface compliance
var _ repositories.OfficeRepository = (*OfficeRepository)(nil)

// Register adds an office to the repository
func (r *OfficeRepository) Register(office *entities.Office) error {
	if office == nil {
		return fmt.Errorf("office cannot be nil")
	}
	r.offices = append(r.offices, office)
	return nil
}

// GetOffices returns all registered offices in registration order
func (r *OfficeRepository) GetOffices() ([]*entities.Office, error) {
	offices := make([]*entities.Office, len(r.offices))
	copy(offices, r.offices)
	return offices, nil
}
