package adminRepo

import (
	"expertbridge/models"
)

// AdminRepository defines persistence operations over the admins collection.
// Lookups return (nil, nil) when no document matches.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
}
