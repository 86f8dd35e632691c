package professionalRepo

import (
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new professional document.
func (r *MongoProfessionalRepo) Create(professional *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, professional)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a partial update document to one professional.
func (r *MongoProfessionalRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	return nil
}

// Delete removes a professional document by its ID.
func (r *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete professional with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	return nil
}

// IncrementAnalytics bumps the engagement counters. Counters are best-effort:
// retried requests may overcount and that is accepted.
func (r *MongoProfessionalRepo) IncrementAnalytics(id string, profileViews, contactClicks int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inc := bson.M{}
	if profileViews != 0 {
		inc["analytics.profileViews"] = profileViews
	}
	if contactClicks != 0 {
		inc["analytics.contactClicks"] = contactClicks
	}
	if len(inc) == 0 {
		return nil
	}
	update := bson.M{"$inc": inc}
	if profileViews > 0 {
		update["$set"] = bson.M{"analytics.lastViewedAt": time.Now()}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update analytics for professional %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	return nil
}
