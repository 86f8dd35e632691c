package professional

import (
	"testing"

	"expertbridge/models"
	"expertbridge/utils"

	"github.com/stretchr/testify/require"
)

func pendingProfessional(id string) models.Professional {
	return models.Professional{
		ID:           id,
		FullName:     "Jane Wanjiku",
		Email:        id + "@example.com",
		Verification: models.Verification{Status: models.VerificationPending},
		IsActive:     true,
	}
}

func TestSetVerificationApprove(t *testing.T) {
	svc, repo, mailer := newTestService(pendingProfessional("prof-1"))

	err := svc.SetVerification("prof-1", models.VerificationApproved, "", "admin-1")
	require.NoError(t, err)

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, models.VerificationApproved, p.Verification.Status)
	require.NotNil(t, p.Verification.VerifiedAt)
	require.Equal(t, "admin-1", p.Verification.VerifiedBy)
	require.Empty(t, p.Verification.RejectionReason)
	require.Len(t, mailer.sent, 1)
}

func TestSetVerificationRejectDefaultsReason(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	err := svc.SetVerification("prof-1", models.VerificationRejected, "", "admin-1")
	require.NoError(t, err)

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, models.VerificationRejected, p.Verification.Status)
	require.Equal(t, utils.DefaultRejectionReason, p.Verification.RejectionReason)
	require.Nil(t, p.Verification.VerifiedAt)
}

func TestSetVerificationRejectedThenApproved(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	require.NoError(t, svc.SetVerification("prof-1", models.VerificationRejected, "Incomplete profile", "admin-1"))
	require.NoError(t, svc.SetVerification("prof-1", models.VerificationApproved, "", "admin-2"))

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, models.VerificationApproved, p.Verification.Status)
	require.Empty(t, p.Verification.RejectionReason)
	require.Equal(t, "admin-2", p.Verification.VerifiedBy)
}

func TestSetVerificationInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(pendingProfessional("prof-1"))

	err := svc.SetVerification("prof-1", "pending", "", "admin-1")
	require.Error(t, err)
	require.IsType(t, utils.ValidationError{}, err)
}

func TestSetVerificationUnknownProfessional(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.SetVerification("missing", models.VerificationApproved, "", "admin-1")
	require.Error(t, err)
	require.IsType(t, utils.NotFoundError{}, err)
}
