package professional

import (
	professionalRepo "expertbridge/database/repository/professional"
	reviewRepo "expertbridge/database/repository/review"
	subscriptionRepo "expertbridge/database/repository/subscription"
	"expertbridge/models"
	"expertbridge/services/notification"
	"expertbridge/services/storage"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID           string               `json:"id"`
	Token        string               `json:"token"`
	Professional *models.Professional `json:"professional"`
}

// ProfessionalService is the registry over professional records: CRUD, the
// admin-driven verification state machine, and best-effort analytics.
type ProfessionalService interface {
	Register(professional models.Professional) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string, countView bool) (*models.Professional, error)
	UpdateProfile(id, requesterID string, updates map[string]interface{}) (*models.Professional, error)
	UploadProfilePhoto(id, requesterID, imageData string) (*models.Professional, error)
	SetVerification(id, status, reason, adminID string) error
	TrackContact(id string) error
	DeleteProfessional(id string) error
	ListPending() ([]models.Professional, error)
	ListAll(status string, page, limit int64) ([]models.Professional, int64, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo          professionalRepo.ProfessionalRepository
	Reviews       reviewRepo.ReviewRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
	Mailer        notification.Mailer
	Images        storage.ImageStore
}
