package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a ProfessionalRepository over the
// "professionals" collection of the given database.
func NewMongoProfessionalRepo(db *mongo.Database) ProfessionalRepository {
	repo := &MongoProfessionalRepo{coll: db.Collection("professionals")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create professional indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// publicProjection excludes credential material from read results.
var publicProjection = bson.M{"passwordHash": 0}
