package reviewRepo

import (
	"expertbridge/models"
)

// ReviewRepository defines persistence operations over the reviews
// collection. Lookup methods return (nil, nil) when no document matches.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	SetStatus(id, status string) error
	ListByProfessional(professionalID, status string, limit int64) ([]models.Review, error)
	ListByStatus(status string) ([]models.Review, error)
	DeleteByProfessional(professionalID string) (int64, error)
	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
}
