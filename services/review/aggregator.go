package review

import (
	"fmt"
	"math"
	"time"

	"expertbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// recompute derives the professional's rating aggregate from the full set of
// approved reviews and writes it in a single update. Being a pure function of
// the approved set, concurrent recomputes can only race to the same value or
// to values one of them would have produced anyway.
func (s *DefaultReviewService) recompute(professionalID string) error {
	approved, err := s.Repo.ListByProfessional(professionalID, models.ReviewApproved, 0)
	if err != nil {
		return fmt.Errorf("failed to list approved reviews: %w", err)
	}

	ratings := Aggregate(approved)
	update := bson.M{"$set": bson.M{"ratings": ratings, "updatedAt": time.Now()}}
	if err := s.Professionals.UpdateWithDocument(professionalID, update); err != nil {
		return fmt.Errorf("failed to update rating aggregate: %w", err)
	}
	return nil
}

// Aggregate computes the average (rounded to one decimal) and count over a
// set of reviews. An empty set yields the zero aggregate.
func Aggregate(reviews []models.Review) models.Ratings {
	if len(reviews) == 0 {
		return models.Ratings{}
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	average := float64(sum) / float64(len(reviews))
	return models.Ratings{
		Average: math.Round(average*10) / 10,
		Count:   len(reviews),
	}
}
