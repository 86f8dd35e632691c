package review

import (
	"testing"

	"expertbridge/models"

	"github.com/stretchr/testify/require"
)

func TestAggregateEmptySet(t *testing.T) {
	ratings := Aggregate(nil)
	require.Equal(t, models.Ratings{}, ratings)
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	cases := []struct {
		name    string
		scores  []int
		average float64
	}{
		{"single", []int{4}, 4.0},
		{"halves", []int{4, 5}, 4.5},
		{"thirds round down", []int{5, 4, 4}, 4.3},
		{"thirds round up", []int{5, 5, 4}, 4.7},
		{"sixths", []int{1, 2, 3, 4, 5, 5}, 3.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var reviews []models.Review
			for _, score := range tc.scores {
				reviews = append(reviews, models.Review{Rating: score})
			}
			ratings := Aggregate(reviews)
			require.Equal(t, tc.average, ratings.Average)
			require.Equal(t, len(tc.scores), ratings.Count)
		})
	}
}
