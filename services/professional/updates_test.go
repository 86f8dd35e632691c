package professional

import (
	"testing"

	"expertbridge/utils"

	"github.com/stretchr/testify/require"
)

func TestUpdateProfileForbiddenForOtherProfiles(t *testing.T) {
	svc, _, _ := newTestService(pendingProfessional("prof-1"))

	_, err := svc.UpdateProfile("prof-1", "prof-2", map[string]interface{}{"bio": "new"})
	require.Error(t, err)
	require.IsType(t, utils.ForbiddenError{}, err)
}

func TestUpdateProfileFiltersProtectedFields(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	_, err := svc.UpdateProfile("prof-1", "prof-1", map[string]interface{}{
		"fullName":     "Jane W. Kamau",
		"bio":          "Updated bio",
		"email":        "sneaky@example.com",
		"verification": map[string]interface{}{"status": "approved"},
		"featured":     map[string]interface{}{"isFeatured": true},
		"ratings":      map[string]interface{}{"average": 5.0},
		"passwordHash": "owned",
	})
	require.NoError(t, err)

	require.Contains(t, repo.lastSet, "fullName")
	require.Contains(t, repo.lastSet, "bio")
	require.Contains(t, repo.lastSet, "updatedAt")
	require.NotContains(t, repo.lastSet, "email")
	require.NotContains(t, repo.lastSet, "verification")
	require.NotContains(t, repo.lastSet, "featured")
	require.NotContains(t, repo.lastSet, "ratings")
	require.NotContains(t, repo.lastSet, "passwordHash")
}

func TestUpdateProfileUnknownProfessional(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateProfile("missing", "missing", map[string]interface{}{"bio": "new"})
	require.Error(t, err)
	require.IsType(t, utils.NotFoundError{}, err)
}

func TestUploadProfilePhoto(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	_, err := svc.UploadProfilePhoto("prof-1", "prof-1", "data:image/png;base64,aGk=")
	require.NoError(t, err)

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, "https://img.example.com/prof-1", p.ProfilePhoto.URL)
	require.Equal(t, "prof-1", p.ProfilePhoto.PublicID)
}

func TestUploadProfilePhotoOwnerOnly(t *testing.T) {
	svc, _, _ := newTestService(pendingProfessional("prof-1"))

	_, err := svc.UploadProfilePhoto("prof-1", "prof-2", "data:image/png;base64,aGk=")
	require.Error(t, err)
	require.IsType(t, utils.ForbiddenError{}, err)
}

func TestGetByIDCountsView(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	_, err := svc.GetByID("prof-1", true)
	require.NoError(t, err)
	_, err = svc.GetByID("prof-1", false)
	require.NoError(t, err)

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, int64(1), p.Analytics.ProfileViews)
}

func TestTrackContact(t *testing.T) {
	svc, repo, _ := newTestService(pendingProfessional("prof-1"))

	require.NoError(t, svc.TrackContact("prof-1"))
	require.NoError(t, svc.TrackContact("prof-1"))

	p, _ := repo.GetByID("prof-1")
	require.Equal(t, int64(2), p.Analytics.ContactClicks)
}
