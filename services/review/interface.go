package review

import (
	professionalRepo "expertbridge/database/repository/professional"
	reviewRepo "expertbridge/database/repository/review"
	"expertbridge/models"
)

// ReviewService handles client review submission, moderation and the rating
// aggregate kept on each professional.
type ReviewService interface {
	Submit(review models.Review) (*models.Review, error)
	Approve(reviewID string) (*models.Review, error)
	ListApproved(professionalID string, limit int64) ([]models.Review, error)
	ListPending() ([]models.Review, error)
}

// DefaultReviewService is the production implementation. With AutoApprove
// set, submitted reviews skip moderation and count toward the rating
// immediately.
type DefaultReviewService struct {
	Repo          reviewRepo.ReviewRepository
	Professionals professionalRepo.ProfessionalRepository
	AutoApprove   bool
}
