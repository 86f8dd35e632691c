package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates an AdminRepository over the "admins" collection
// of the given database.
func NewMongoAdminRepo(db *mongo.Database) AdminRepository {
	repo := &MongoAdminRepo{coll: db.Collection("admins")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create admin indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces admin email uniqueness. The unique index is what
// makes the lazy default-admin bootstrap race-safe.
func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}

// Create inserts a new admin document. A duplicate email surfaces as a
// mongo duplicate-key error the caller can detect.
func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// GetByID fetches an admin by its application-level id.
func (r *MongoAdminRepo) GetByID(id string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with id %s: %w", id, err)
	}
	return &admin, nil
}

// GetByEmail fetches an admin by email. Emails are stored lowercased.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin by email: %w", err)
	}
	return &admin, nil
}
