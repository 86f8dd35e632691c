package subscriptionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo creates a SubscriptionRepository over the
// "subscriptions" collection of the given database.
func NewMongoSubscriptionRepo(db *mongo.Database) SubscriptionRepository {
	repo := &MongoSubscriptionRepo{coll: db.Collection("subscriptions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create subscription indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSubscriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "professionalId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create subscription indexes: %w", err)
	}
	return nil
}

// Create inserts a new subscription record.
func (r *MongoSubscriptionRepo) Create(subscription *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, subscription)
	if err != nil {
		return fmt.Errorf("failed to create subscription record: %w", err)
	}
	return nil
}

// GetByReference fetches a subscription record by its payment reference.
func (r *MongoSubscriptionRepo) GetByReference(reference string) (*models.Subscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var subscription models.Subscription
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&subscription)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription by reference: %w", err)
	}
	return &subscription, nil
}

// UpdateByReference applies a partial update to the record with the given
// payment reference.
func (r *MongoSubscriptionRepo) UpdateByReference(reference string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"reference": reference}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", reference, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Msg: "subscription record not found"}
	}
	return nil
}

// ListByProfessional returns a professional's payment history, newest first.
func (r *MongoSubscriptionRepo) ListByProfessional(professionalID string) ([]models.Subscription, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professionalId": professionalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for professional %s: %w", professionalID, err)
	}
	defer cursor.Close(ctx)

	var subscriptions []models.Subscription
	for cursor.Next(ctx) {
		var s models.Subscription
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		subscriptions = append(subscriptions, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return subscriptions, nil
}

// DeleteByProfessional removes every subscription record referencing a
// professional. Used only by the cascade delete.
func (r *MongoSubscriptionRepo) DeleteByProfessional(professionalID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"professionalId": professionalID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscriptions for professional %s: %w", professionalID, err)
	}
	return result.DeletedCount, nil
}
