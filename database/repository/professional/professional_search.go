package professionalRepo

import (
	"fmt"
	"time"

	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service type filter values.
const (
	ServiceTypeVirtual  = "virtual"
	ServiceTypeInPerson = "inPerson"
)

// Sort keys accepted by Search. Anything else falls back to the default
// featured-first, rating-descending order.
const (
	SortByRating     = "rating"
	SortByExperience = "experience"
)

// SearchCriteria describes a listing query over approved, active
// professionals. Distinct fields compose with AND semantics; the keyword
// matches with OR semantics across name, bio and subcategory.
type SearchCriteria struct {
	Category      string
	Country       string
	City          string
	Keyword       string
	ServiceType   string
	MinExperience int
	MinRating     float64
	FeaturedOnly  bool
	SortBy        string
	Page          int64
	Limit         int64
}

// Filter builds the Mongo filter document. The base predicate always
// requires an approved, active professional; FeaturedOnly adds the read-time
// featured window check so a stale isFeatured flag never surfaces.
func (c SearchCriteria) Filter(now time.Time) bson.M {
	filter := bson.M{
		"verification.status": models.VerificationApproved,
		"isActive":            true,
	}
	if c.FeaturedOnly {
		filter["featured.isFeatured"] = true
		filter["featured.featuredUntil"] = bson.M{"$gt": now}
	}
	if c.Category != "" {
		filter["category"] = c.Category
	}
	if c.Country != "" {
		filter["location.country"] = bson.M{"$regex": c.Country, "$options": "i"}
	}
	if c.City != "" {
		filter["location.city"] = bson.M{"$regex": c.City, "$options": "i"}
	}
	if c.Keyword != "" {
		filter["$or"] = []bson.M{
			{"fullName": bson.M{"$regex": c.Keyword, "$options": "i"}},
			{"bio": bson.M{"$regex": c.Keyword, "$options": "i"}},
			{"subcategory": bson.M{"$regex": c.Keyword, "$options": "i"}},
		}
	}
	switch c.ServiceType {
	case ServiceTypeVirtual:
		filter["serviceOptions.virtual"] = true
	case ServiceTypeInPerson:
		filter["serviceOptions.inPerson"] = true
	}
	if c.MinExperience > 0 {
		filter["experience"] = bson.M{"$gte": c.MinExperience}
	}
	if c.MinRating > 0 {
		filter["ratings.average"] = bson.M{"$gte": c.MinRating}
	}
	return filter
}

// Sort builds the sort document: featured placement always wins, then the
// selected key, then recency.
func (c SearchCriteria) Sort() bson.D {
	sort := bson.D{{Key: "featured.isFeatured", Value: -1}}
	switch c.SortBy {
	case SortByExperience:
		sort = append(sort, bson.E{Key: "experience", Value: -1})
	case SortByRating:
		sort = append(sort, bson.E{Key: "ratings.average", Value: -1})
	default:
		sort = append(sort, bson.E{Key: "ratings.average", Value: -1})
	}
	return append(sort, bson.E{Key: "createdAt", Value: -1})
}

// Search runs the listing query and returns the page of professionals along
// with the total match count.
func (r *MongoProfessionalRepo) Search(criteria SearchCriteria) ([]models.Professional, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := criteria.Filter(time.Now())

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit <= 0 {
		limit = 12
	}

	opts := options.Find().
		SetProjection(publicProjection).
		SetSort(criteria.Sort()).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search query failed: %w", err)
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
