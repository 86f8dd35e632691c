package review

import (
	"fmt"
	"strings"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Submit records a client review for a professional. Ratings outside [1, 5]
// are clamped rather than rejected. The review starts pending unless
// auto-approval is on, in which case it immediately feeds the professional's
// rating aggregate.
func (s *DefaultReviewService) Submit(review models.Review) (*models.Review, error) {
	if err := validateSubmission(&review); err != nil {
		return nil, err
	}

	professional, err := s.Professionals.GetByIDWithProjection(review.ProfessionalID, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to look up professional: %w", err)
	}
	if professional == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}

	if review.Rating < 1 {
		review.Rating = 1
	} else if review.Rating > 5 {
		review.Rating = 5
	}

	review.ID = uuid.New().String()
	review.Status = models.ReviewPending
	if s.AutoApprove {
		review.Status = models.ReviewApproved
	}
	review.CreatedAt = time.Now()

	if err := s.Repo.Create(&review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if review.Status == models.ReviewApproved {
		if err := s.recompute(review.ProfessionalID); err != nil {
			return nil, err
		}
	}
	return &review, nil
}

func validateSubmission(r *models.Review) error {
	var missing []string
	if r.ProfessionalID == "" {
		missing = append(missing, "professionalId")
	}
	if r.ClientName == "" {
		missing = append(missing, "clientName")
	}
	if r.ClientEmail == "" {
		missing = append(missing, "clientEmail")
	}
	if r.Comment == "" {
		missing = append(missing, "comment")
	}
	if len(missing) > 0 {
		return utils.ValidationError{Msg: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}
