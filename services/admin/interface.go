package admin

import (
	adminRepo "expertbridge/database/repository/admin"
	professionalRepo "expertbridge/database/repository/professional"
	reviewRepo "expertbridge/database/repository/review"
	"expertbridge/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse is returned after an admin signs in.
type AuthResponse struct {
	ID    string        `json:"id"`
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	TotalProfessionals    int64            `json:"totalProfessionals"`
	PendingProfessionals  int64            `json:"pendingProfessionals"`
	ApprovedProfessionals int64            `json:"approvedProfessionals"`
	RejectedProfessionals int64            `json:"rejectedProfessionals"`
	TotalReviews          int64            `json:"totalReviews"`
	PendingReviews        int64            `json:"pendingReviews"`
	ByCategory            map[string]int64 `json:"byCategory"`
}

// AdminService authenticates back-office accounts and serves dashboard
// aggregates.
type AdminService interface {
	Login(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.Admin, error)
	GetStats() (*Stats, error)
}

// DefaultAdminService is the production implementation. Cache may be nil, in
// which case stats are computed on every request.
type DefaultAdminService struct {
	Repo          adminRepo.AdminRepository
	Professionals professionalRepo.ProfessionalRepository
	Reviews       reviewRepo.ReviewRepository
	Cache         *redis.Client
}
