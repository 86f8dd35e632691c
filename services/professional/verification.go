package professional

import (
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// SetVerification moves a professional through the verification state
// machine. Approving sets the audit fields and clears any prior rejection
// reason; rejecting records a reason, defaulting when the admin gives none.
// A rejected professional may later be approved.
func (s *DefaultProfessionalService) SetVerification(id, status, reason, adminID string) error {
	if status != models.VerificationApproved && status != models.VerificationRejected {
		return utils.ValidationError{Msg: "status must be approved or rejected"}
	}

	existing, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "email": 1, "fullName": 1, "verification": 1})
	if err != nil {
		return fmt.Errorf("failed to get professional: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError{Msg: "professional not found"}
	}

	now := time.Now()
	verification := models.Verification{Status: status}
	if status == models.VerificationApproved {
		verification.VerifiedAt = &now
		verification.VerifiedBy = adminID
	} else {
		if reason == "" {
			reason = utils.DefaultRejectionReason
		}
		verification.RejectionReason = reason
	}

	update := bson.M{"$set": bson.M{"verification": verification, "updatedAt": now}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return err
	}

	if status == models.VerificationApproved {
		s.notify(existing.Email, "Your ExpertBridge profile is approved",
			fmt.Sprintf("<p>Hi %s,</p><p>Your profile has been verified and is now visible in the directory.</p>", existing.FullName))
	} else {
		s.notify(existing.Email, "Your ExpertBridge profile was not approved",
			fmt.Sprintf("<p>Hi %s,</p><p>Your profile was rejected: %s</p><p>You can update your profile and contact support for re-review.</p>", existing.FullName, verification.RejectionReason))
	}
	return nil
}
