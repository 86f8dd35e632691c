package subscription

import (
	"context"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Initialize starts a featured-placement purchase: it records a pending
// payment and hands the client the gateway's checkout URL. Nothing on the
// professional changes until the payment is verified.
func (s *DefaultSubscriptionService) Initialize(professionalID, planID string) (*InitializeResponse, error) {
	plan, ok := FindPlan(planID)
	if !ok {
		return nil, utils.ValidationError{Msg: "unknown plan: " + planID}
	}

	professional, err := s.Professionals.GetByIDWithProjection(professionalID, bson.M{"id": 1, "email": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to look up professional: %w", err)
	}
	if professional == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}

	reference := uuid.New().String()
	record := models.Subscription{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		PlanID:         plan.ID,
		Reference:      reference,
		Amount:         plan.Price,
		Currency:       plan.Currency,
		Status:         models.PaymentPending,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(&record); err != nil {
		return nil, fmt.Errorf("failed to create subscription record: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := s.Gateway.InitializeTransaction(ctx, professional.Email, plan.Price, plan.Currency, reference, s.CallbackURL, map[string]string{
		"professionalId": professionalID,
		"planId":         plan.ID,
	})
	if err != nil {
		return nil, utils.UpstreamError{Msg: "payment initialization failed", Err: err}
	}

	if result.Simulated {
		if err := s.Repo.UpdateByReference(reference, bson.M{"$set": bson.M{"simulated": true}}); err != nil {
			return nil, err
		}
	}

	return &InitializeResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        reference,
		Simulated:        result.Simulated,
	}, nil
}
