package subscription

import (
	"context"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Verify confirms a payment with the gateway and activates the featured
// window it bought. Verification is idempotent on the reference: once a
// record is completed, repeat calls return it as-is and never re-extend the
// window.
func (s *DefaultSubscriptionService) Verify(reference string) (*models.Subscription, error) {
	if reference == "" {
		return nil, utils.ValidationError{Msg: "payment reference required"}
	}

	record, err := s.Repo.GetByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to look up subscription record: %w", err)
	}
	if record == nil {
		return nil, utils.ValidationError{Msg: "unknown payment reference"}
	}
	if record.Status == models.PaymentCompleted {
		return record, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := s.Gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, utils.UpstreamError{Msg: "payment verification failed", Err: err}
	}
	if !result.Success {
		return nil, utils.ValidationError{Msg: "payment not successful"}
	}

	plan, ok := FindPlan(record.PlanID)
	if !ok {
		return nil, fmt.Errorf("subscription record references unknown plan %q", record.PlanID)
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, plan.DurationDays)

	if err := s.applyFeaturedWindow(record.ProfessionalID, plan, reference, now, endDate); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"status":      models.PaymentCompleted,
		"simulated":   result.Simulated,
		"startDate":   now,
		"endDate":     endDate,
		"completedAt": now,
	}}
	if err := s.Repo.UpdateByReference(reference, update); err != nil {
		return nil, err
	}

	record.Status = models.PaymentCompleted
	record.Simulated = result.Simulated
	record.StartDate = &now
	record.EndDate = &endDate
	record.CompletedAt = &now

	s.notifyActivation(record.ProfessionalID, plan, endDate)
	return record, nil
}

// applyFeaturedWindow flips the professional into the featured and active
// subscription state for the purchased window.
func (s *DefaultSubscriptionService) applyFeaturedWindow(professionalID string, plan models.Plan, reference string, start, end time.Time) error {
	update := bson.M{"$set": bson.M{
		"featured": models.Featured{
			IsFeatured:    true,
			FeaturedUntil: &end,
			FeaturedTier:  plan.ID,
		},
		"subscription": models.SubscriptionInfo{
			Plan:       plan.ID,
			Status:     models.SubscriptionActive,
			StartDate:  &start,
			EndDate:    &end,
			PaymentRef: reference,
		},
		"updatedAt": start,
	}}
	return s.Professionals.UpdateWithDocument(professionalID, update)
}

func (s *DefaultSubscriptionService) notifyActivation(professionalID string, plan models.Plan, until time.Time) {
	if s.Mailer == nil {
		return
	}
	professional, err := s.Professionals.GetByIDWithProjection(professionalID, bson.M{"email": 1, "fullName": 1})
	if err != nil || professional == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your %s subscription is active. Your profile is featured until %s.</p>",
		professional.FullName, plan.Name, until.Format("2 January 2006"))
	if err := s.Mailer.Send(ctx, professional.Email, "Featured placement activated", body); err != nil {
		utils.GetLogger().Warn("Failed to send subscription email",
			zap.String("professionalId", professionalID), zap.Error(err))
	}
}
