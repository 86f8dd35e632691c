package subscription

import (
	professionalRepo "expertbridge/database/repository/professional"
	subscriptionRepo "expertbridge/database/repository/subscription"
	"expertbridge/models"
	"expertbridge/services/notification"
	"expertbridge/services/payment"
)

// InitializeResponse is handed back to the client to complete payment.
type InitializeResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
	Simulated        bool   `json:"simulated,omitempty"`
}

// SubscriptionService sells featured placement: it initializes payments with
// the gateway, verifies them idempotently, and applies the featured window to
// the professional.
type SubscriptionService interface {
	ListPlans() []models.Plan
	Initialize(professionalID, planID string) (*InitializeResponse, error)
	Verify(reference string) (*models.Subscription, error)
	ActivateMock(professionalID, planID string) (*models.Subscription, error)
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Repo          subscriptionRepo.SubscriptionRepository
	Professionals professionalRepo.ProfessionalRepository
	Gateway       payment.Gateway
	Mailer        notification.Mailer
	CallbackURL   string
}

// ListPlans returns the featured-placement catalog.
func (s *DefaultSubscriptionService) ListPlans() []models.Plan {
	return Plans
}
