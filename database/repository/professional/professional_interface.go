package professionalRepo

import (
	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfessionalRepository defines persistence operations over the
// professionals collection. Documents are keyed by the application-level
// "id" field, never the store-native one. Lookup methods return (nil, nil)
// when no document matches.
type ProfessionalRepository interface {
	Create(professional *models.Professional) error
	GetByID(id string) (*models.Professional, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Professional, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.Professional, error)
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	IncrementAnalytics(id string, profileViews, contactClicks int64) error

	Search(criteria SearchCriteria) ([]models.Professional, int64, error)
	ListByVerificationStatus(status string, page, limit int64) ([]models.Professional, int64, error)
	CountAll() (int64, error)
	CountByVerificationStatus(status string) (int64, error)
	CategoryCounts(visibleOnly bool) (map[string]int64, error)
}
