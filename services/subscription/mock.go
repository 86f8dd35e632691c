package subscription

import (
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ActivateMock grants a featured window without touching the gateway. It
// exists for demos and local development; the record it writes is marked
// simulated so it is never confused with real revenue.
func (s *DefaultSubscriptionService) ActivateMock(professionalID, planID string) (*models.Subscription, error) {
	plan, ok := FindPlan(planID)
	if !ok {
		return nil, utils.ValidationError{Msg: "unknown plan: " + planID}
	}

	professional, err := s.Professionals.GetByIDWithProjection(professionalID, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to look up professional: %w", err)
	}
	if professional == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, plan.DurationDays)
	reference := "mock-" + uuid.New().String()

	record := models.Subscription{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		PlanID:         plan.ID,
		Reference:      reference,
		Amount:         plan.Price,
		Currency:       plan.Currency,
		Status:         models.PaymentCompleted,
		Simulated:      true,
		StartDate:      &now,
		EndDate:        &endDate,
		CreatedAt:      now,
		CompletedAt:    &now,
	}
	if err := s.Repo.Create(&record); err != nil {
		return nil, fmt.Errorf("failed to create subscription record: %w", err)
	}

	if err := s.applyFeaturedWindow(professionalID, plan, reference, now, endDate); err != nil {
		return nil, err
	}
	return &record, nil
}
