package professional

import (
	"fmt"
	"strings"
	"time"

	"expertbridge/models"
	"expertbridge/services/storage"
	"expertbridge/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Register creates a new professional in the pending verification state,
// issues a bearer token and sends a welcome notification. The notification
// is fire-and-forget: a send failure never fails registration.
func (s *DefaultProfessionalService) Register(professional models.Professional) (*AuthResponse, error) {
	if err := validateRegistration(&professional); err != nil {
		return nil, err
	}

	professional.Email = strings.ToLower(strings.TrimSpace(professional.Email))

	// Enforce case-insensitive email uniqueness.
	existing, err := s.Repo.GetByEmailWithProjection(professional.Email, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing professional: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError{Msg: "email already registered"}
	}

	hashedPassword, err := utils.HashPassword(professional.Password)
	if err != nil {
		return nil, err
	}
	professional.PasswordHash = hashedPassword
	professional.Password = ""

	professional.ID = uuid.New().String()
	now := time.Now()
	professional.CreatedAt = now
	professional.UpdatedAt = now

	applyRegistrationDefaults(&professional)

	if err := s.Repo.Create(&professional); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	token, err := utils.GenerateToken(professional.ID, professional.Email, utils.RoleProfessional, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	s.notify(professional.Email, "Welcome to ExpertBridge",
		fmt.Sprintf("<p>Hi %s,</p><p>Your profile was created and is awaiting verification. You will be listed once an admin approves it.</p>", professional.FullName))

	professional.PasswordHash = ""
	return &AuthResponse{
		ID:           professional.ID,
		Token:        token,
		Professional: &professional,
	}, nil
}

func validateRegistration(p *models.Professional) error {
	var missing []string
	if p.FullName == "" {
		missing = append(missing, "fullName")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Password == "" {
		missing = append(missing, "password")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Bio == "" {
		missing = append(missing, "bio")
	}
	if p.Experience <= 0 {
		missing = append(missing, "experience")
	}
	if p.Location.Country == "" && p.Location.City == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return utils.ValidationError{Msg: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}

func applyRegistrationDefaults(p *models.Professional) {
	if !p.ServiceOptions.InPerson && !p.ServiceOptions.Virtual {
		p.ServiceOptions.Virtual = true
	}
	if p.ServiceOptions.ServiceRadius == "" {
		p.ServiceOptions.ServiceRadius = "city"
	}
	if len(p.Languages) == 0 {
		p.Languages = []string{"English"}
	}
	if p.ProfilePhoto.URL == "" {
		p.ProfilePhoto = models.ProfilePhoto{URL: storage.AvatarURL(p.FullName)}
	}
	p.Verification = models.Verification{Status: models.VerificationPending}
	p.Featured = models.Featured{IsFeatured: false, FeaturedTier: "basic"}
	p.Subscription = models.SubscriptionInfo{Status: models.SubscriptionInactive}
	p.Ratings = models.Ratings{}
	p.Analytics = models.Analytics{}
	p.IsActive = true
}
