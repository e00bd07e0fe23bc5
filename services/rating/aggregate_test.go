package rating

import (
	"testing"

	"iscort/models"
)

func verified(score int) models.Rating {
	return models.Rating{Score: score, Verified: true}
}

func unverified(score int) models.Rating {
	return models.Rating{Score: score, Verified: false}
}

func TestComputeAggregate(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []models.Rating
		wantAvg   float64
		wantCount int
	}{
		{
			name:      "no ratings",
			ratings:   nil,
			wantAvg:   0,
			wantCount: 0,
		},
		{
			name:      "only unverified",
			ratings:   []models.Rating{unverified(5), unverified(1)},
			wantAvg:   0,
			wantCount: 0,
		},
		{
			name:      "single verified",
			ratings:   []models.Rating{verified(4)},
			wantAvg:   4.0,
			wantCount: 1,
		},
		{
			name:      "mixed scores round to one decimal",
			ratings:   []models.Rating{verified(5), verified(5), verified(4), verified(4)},
			wantAvg:   4.5,
			wantCount: 4,
		},
		{
			name:      "unverified ratings are excluded",
			ratings:   []models.Rating{verified(5), verified(5), verified(4), verified(4), unverified(1)},
			wantAvg:   4.5,
			wantCount: 4,
		},
		{
			name:      "rounding up",
			ratings:   []models.Rating{verified(5), verified(5), verified(4), verified(4), verified(1)},
			wantAvg:   3.8,
			wantCount: 5,
		},
		{
			name:      "repeating decimal rounds",
			ratings:   []models.Rating{verified(5), verified(4), verified(4)},
			wantAvg:   4.3,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := ComputeAggregate(tt.ratings)
			if avg != tt.wantAvg || count != tt.wantCount {
				t.Errorf("ComputeAggregate() = (%v, %d), want (%v, %d)", avg, count, tt.wantAvg, tt.wantCount)
			}
		})
	}
}
