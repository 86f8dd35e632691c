package review

import (
	"fmt"

	"expertbridge/models"
	"expertbridge/utils"
)

// Approve publishes a pending review and synchronously folds it into the
// professional's rating aggregate. Approving an already approved review is a
// no-op recompute, not an error.
func (s *DefaultReviewService) Approve(reviewID string) (*models.Review, error) {
	review, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, utils.NotFoundError{Msg: "review not found"}
	}

	if review.Status != models.ReviewApproved {
		if err := s.Repo.SetStatus(reviewID, models.ReviewApproved); err != nil {
			return nil, err
		}
		review.Status = models.ReviewApproved
	}

	if err := s.recompute(review.ProfessionalID); err != nil {
		return nil, err
	}
	return review, nil
}

// ListApproved returns a professional's published reviews, newest first.
func (s *DefaultReviewService) ListApproved(professionalID string, limit int64) ([]models.Review, error) {
	return s.Repo.ListByProfessional(professionalID, models.ReviewApproved, limit)
}

// ListPending returns the moderation queue.
func (s *DefaultReviewService) ListPending() ([]models.Review, error) {
	return s.Repo.ListByStatus(models.ReviewPending)
}
