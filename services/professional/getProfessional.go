package professional

import (
	"fmt"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetByID fetches a professional's public record. With countView set the
// profile-view counter is bumped best-effort; a failed bump never fails the
// read.
func (s *DefaultProfessionalService) GetByID(id string, countView bool) (*models.Professional, error) {
	professional, err := s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	if professional == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}

	if countView {
		if err := s.Repo.IncrementAnalytics(id, 1, 0); err != nil {
			utils.GetLogger().Warn("Failed to count profile view", zap.String("id", id), zap.Error(err))
		}
	}
	return professional, nil
}

// TrackContact bumps the contact-click counter. Best-effort and not
// exactly-once: overcounting under retries is accepted.
func (s *DefaultProfessionalService) TrackContact(id string) error {
	return s.Repo.IncrementAnalytics(id, 0, 1)
}
