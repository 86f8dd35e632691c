package professional

import (
	"context"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.uber.org/zap"
)

// DeleteProfessional removes a professional and everything hanging off it.
// Dependents go first so a crash mid-way never leaves reviews or payment
// records pointing at a missing professional without the professional still
// being present to retry against.
func (s *DefaultProfessionalService) DeleteProfessional(id string) error {
	existing, err := s.Repo.GetByIDWithProjection(id, nil)
	if err != nil {
		return fmt.Errorf("failed to get professional: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError{Msg: "professional not found"}
	}

	deletedReviews, err := s.Reviews.DeleteByProfessional(id)
	if err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	if _, err := s.Subscriptions.DeleteByProfessional(id); err != nil {
		return fmt.Errorf("failed to delete subscription records: %w", err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	utils.GetLogger().Info("Professional deleted",
		zap.String("id", id),
		zap.Int64("reviewsRemoved", deletedReviews))
	return nil
}

// ListPending returns every professional awaiting verification, newest first.
func (s *DefaultProfessionalService) ListPending() ([]models.Professional, error) {
	pending, _, err := s.Repo.ListByVerificationStatus(models.VerificationPending, 1, 0)
	return pending, err
}

// ListAll returns professionals for the admin dashboard, optionally filtered
// by verification status.
func (s *DefaultProfessionalService) ListAll(status string, page, limit int64) ([]models.Professional, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.ListByVerificationStatus(status, page, limit)
}

// notify sends an email synchronously and swallows failures: notifications
// are a courtesy, never part of the operation's contract.
func (s *DefaultProfessionalService) notify(to, subject, body string) {
	if s.Mailer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Mailer.Send(ctx, to, subject, body); err != nil {
		utils.GetLogger().Warn("Failed to send notification email",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
