package professionalRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the listing and uniqueness invariants
// rely on. Safe to call on every startup.
func (r *MongoProfessionalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "verification.status", Value: 1}, {Key: "isActive", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "featured.isFeatured", Value: -1}, {Key: "ratings.average", Value: -1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create professional indexes: %w", err)
	}
	return nil
}
