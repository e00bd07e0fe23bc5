package rating

import (
	"math"

	"iscort/models"
)

// ComputeAggregate derives the cached aggregate fields of a listing from a
// snapshot of its ratings. Only verified ratings contribute. The average is
// rounded to one decimal; an empty verified set yields (0, 0).
func ComputeAggregate(ratings []models.Rating) (averageRating float64, reviewCount int) {
	sum := 0
	for _, r := range ratings {
		if !r.Verified {
			continue
		}
		sum += r.Score
		reviewCount++
	}
	if reviewCount == 0 {
		return 0, 0
	}
	averageRating = round1(float64(sum) / float64(reviewCount))
	return averageRating, reviewCount
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
