package professional

import (
	"context"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/services/storage"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// mutableFields is the whitelist of profile fields a professional may change
// about itself. Verification, featured, subscription and ratings state are
// never writable here: they change only through their own operations.
var mutableFields = map[string]bool{
	"fullName":       true,
	"phone":          true,
	"category":       true,
	"subcategory":    true,
	"bio":            true,
	"experience":     true,
	"location":       true,
	"serviceOptions": true,
	"languages":      true,
	"socialLinks":    true,
	"profilePhoto":   true,
}

// UpdateProfile applies a partial update of whitelisted fields to the
// caller's own record.
func (s *DefaultProfessionalService) UpdateProfile(id, requesterID string, updates map[string]interface{}) (*models.Professional, error) {
	if requesterID != id {
		return nil, utils.ForbiddenError{Msg: "cannot update another professional's profile"}
	}

	setDoc := bson.M{"updatedAt": time.Now()}
	for field, value := range updates {
		if mutableFields[field] {
			setDoc[field] = value
		}
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": setDoc}); err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to reload professional: %w", err)
	}
	if updated == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}
	return updated, nil
}

// UploadProfilePhoto stores a new profile image for the caller's own record
// and points the profile at it.
func (s *DefaultProfessionalService) UploadProfilePhoto(id, requesterID, imageData string) (*models.Professional, error) {
	if requesterID != id {
		return nil, utils.ForbiddenError{Msg: "cannot update another professional's profile"}
	}
	if imageData == "" {
		return nil, utils.ValidationError{Msg: "image data required"}
	}

	existing, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "fullName": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	if existing == nil {
		return nil, utils.NotFoundError{Msg: "professional not found"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := s.Images.Upload(ctx, imageData, storage.UploadOptions{
		Folder:   "expertbridge/profiles",
		PublicID: id,
	})
	if err != nil {
		return nil, utils.UpstreamError{Msg: "image upload failed", Err: err}
	}

	photo := models.ProfilePhoto{URL: result.URL, PublicID: result.PublicID}
	update := bson.M{"$set": bson.M{"profilePhoto": photo, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return nil, err
	}

	return s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0})
}
