package subscriptionRepo

import (
	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SubscriptionRepository defines persistence operations over the
// subscriptions collection. Records are append-only payment history; the
// only mutation is the pending -> completed transition applied through
// UpdateByReference. Lookups return (nil, nil) when no document matches.
type SubscriptionRepository interface {
	Create(subscription *models.Subscription) error
	GetByReference(reference string) (*models.Subscription, error)
	UpdateByReference(reference string, updateDoc bson.M) error
	ListByProfessional(professionalID string) ([]models.Subscription, error)
	DeleteByProfessional(professionalID string) (int64, error)
}
