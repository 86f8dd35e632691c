package reviewRepo

import (
	"errors"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID fetches a review by its application-level id.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// SetStatus transitions a review's moderation status.
func (r *MongoReviewRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Msg: "review not found"}
	}
	return nil
}

// DeleteByProfessional removes every review referencing a professional.
// Used only by the cascade delete.
func (r *MongoReviewRepo) DeleteByProfessional(professionalID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"professionalId": professionalID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reviews for professional %s: %w", professionalID, err)
	}
	return result.DeletedCount, nil
}
