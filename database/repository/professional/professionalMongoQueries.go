package professionalRepo

import (
	"errors"
	"fmt"
	"time"

	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a professional by its application-level id.
func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByIDWithProjection fetches a professional by id, optionally restricting
// the returned fields.
func (r *MongoProfessionalRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var professional models.Professional
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&professional)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &professional, nil
}

// GetByEmailWithProjection fetches a professional by email. Emails are stored
// lowercased, so callers must lowercase before lookup.
func (r *MongoProfessionalRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var professional models.Professional
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&professional)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional by email: %w", err)
	}
	return &professional, nil
}

// ListByVerificationStatus returns professionals in a verification state,
// newest first, with the matching total. An empty status matches everything.
func (r *MongoProfessionalRepo) ListByVerificationStatus(status string, page, limit int64) ([]models.Professional, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["verification.status"] = status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count professionals: %w", err)
	}

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetProjection(publicProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetSkip((page - 1) * limit).SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	for cursor.Next(ctx) {
		var p models.Professional
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, fmt.Errorf("failed to decode professional: %w", err)
		}
		professionals = append(professionals, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}
	return professionals, total, nil
}

// CountAll counts every professional regardless of state.
func (r *MongoProfessionalRepo) CountAll() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count professionals: %w", err)
	}
	return count, nil
}

// CountByVerificationStatus counts professionals in a verification state.
func (r *MongoProfessionalRepo) CountByVerificationStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"verification.status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count professionals by status: %w", err)
	}
	return count, nil
}

// CategoryCounts groups professionals per category. With visibleOnly set the
// aggregation is restricted to approved, active records.
func (r *MongoProfessionalRepo) CategoryCounts(visibleOnly bool) (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if visibleOnly {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"verification.status": models.VerificationApproved,
			"isActive":            true,
		}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$category",
		"count": bson.M{"$sum": 1},
	}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("category aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Category string `bson:"_id"`
			Count    int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode category count: %w", err)
		}
		counts[row.Category] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return counts, nil
}
