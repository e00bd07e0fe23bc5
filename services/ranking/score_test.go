package ranking

import (
	"testing"

	"iscort/models"
)

func TestComputeScoreWorkedExample(t *testing.T) {
	in := ScoreInputs{
		VerifiedRatingMean:  4.5,
		HasVerifiedRatings:  true,
		ProfileCompleteness: 1.0,
		ActiveListings:      3,
		VerificationCount:   3,
		DaysSinceLastUpdate: 4,
		HasListings:         true,
	}
	// 36 + 20 + 15 + 15 + 6
	if got := ComputeScore(in); got != 92.00 {
		t.Errorf("ComputeScore() = %v, want 92.00", got)
	}
}

func TestComputeScoreEmptyProfile(t *testing.T) {
	if got := ComputeScore(ScoreInputs{}); got != 0 {
		t.Errorf("ComputeScore(zero) = %v, want 0", got)
	}
}

func TestComputeScoreMaximum(t *testing.T) {
	in := ScoreInputs{
		VerifiedRatingMean:  5.0,
		HasVerifiedRatings:  true,
		ProfileCompleteness: 1.0,
		ActiveListings:      10,
		VerificationCount:   3,
		DaysSinceLastUpdate: 0,
		HasListings:         true,
	}
	if got := ComputeScore(in); got != 100.00 {
		t.Errorf("ComputeScore(max) = %v, want 100.00", got)
	}
}

func TestComputeScoreBounds(t *testing.T) {
	cases := []ScoreInputs{
		{},
		{HasListings: true, DaysSinceLastUpdate: 500},
		{HasListings: true, DaysSinceLastUpdate: -3},
		{VerifiedRatingMean: 1, HasVerifiedRatings: true},
		{ActiveListings: 1000},
		{VerificationCount: 3, ProfileCompleteness: 1.0},
	}
	for _, in := range cases {
		got := ComputeScore(in)
		if got < 0 || got > 100 {
			t.Errorf("ComputeScore(%+v) = %v, out of [0, 100]", in, got)
		}
	}
}

func TestComputeScoreComponentMonotonicity(t *testing.T) {
	base := ScoreInputs{
		VerifiedRatingMean:  3.0,
		HasVerifiedRatings:  true,
		ProfileCompleteness: 0.5,
		ActiveListings:      1,
		VerificationCount:   1,
		DaysSinceLastUpdate: 5,
		HasListings:         true,
	}
	baseScore := ComputeScore(base)

	raise := []struct {
		name string
		in   ScoreInputs
	}{
		{"rating mean", func(in ScoreInputs) ScoreInputs { in.VerifiedRatingMean = 4.0; return in }(base)},
		{"completeness", func(in ScoreInputs) ScoreInputs { in.ProfileCompleteness = 1.0; return in }(base)},
		{"active listings", func(in ScoreInputs) ScoreInputs { in.ActiveListings = 2; return in }(base)},
		{"verifications", func(in ScoreInputs) ScoreInputs { in.VerificationCount = 2; return in }(base)},
		{"recency", func(in ScoreInputs) ScoreInputs { in.DaysSinceLastUpdate = 1; return in }(base)},
	}
	for _, tt := range raise {
		if got := ComputeScore(tt.in); got < baseScore {
			t.Errorf("raising %s lowered the score: %v -> %v", tt.name, baseScore, got)
		}
	}

	// Past the saturation points a raise may no longer help, but it must
	// never hurt.
	saturated := base
	saturated.ActiveListings = 3
	saturatedScore := ComputeScore(saturated)
	more := saturated
	more.ActiveListings = 8
	if got := ComputeScore(more); got < saturatedScore {
		t.Errorf("raising active listings past saturation lowered the score: %v -> %v", saturatedScore, got)
	}
}

func TestComputeScoreActiveListingsSaturate(t *testing.T) {
	three := ComputeScore(ScoreInputs{ActiveListings: 3})
	five := ComputeScore(ScoreInputs{ActiveListings: 5})
	if three != 15.00 {
		t.Errorf("three active listings = %v, want 15.00", three)
	}
	if five != three {
		t.Errorf("active listings component should saturate: 3 → %v, 5 → %v", three, five)
	}
}

func TestComputeScoreRecencyDecay(t *testing.T) {
	score := func(days int) float64 {
		return ComputeScore(ScoreInputs{HasListings: true, DaysSinceLastUpdate: days})
	}
	if got := score(0); got != 10.00 {
		t.Errorf("fresh listing recency = %v, want 10.00", got)
	}
	if got := score(7); got != 3.00 {
		t.Errorf("7-day recency = %v, want 3.00", got)
	}
	if got := score(10); got != 0 {
		t.Errorf("10-day recency = %v, want 0", got)
	}
	if got := score(365); got != 0 {
		t.Errorf("stale recency = %v, want 0", got)
	}
}

func TestComputeScoreRounding(t *testing.T) {
	// 4.3/5 * 40 = 34.4; a third of the verification weight = 5.
	in := ScoreInputs{
		VerifiedRatingMean: 4.3,
		HasVerifiedRatings: true,
		VerificationCount:  1,
	}
	if got := ComputeScore(in); got != 39.40 {
		t.Errorf("ComputeScore() = %v, want 39.40", got)
	}
}

func TestCompleteness(t *testing.T) {
	full := models.Profile{
		FirstName:   "Ana",
		Email:       "ana@example.com",
		City:        "Quito",
		Gender:      "F",
		Ethnicity:   "mestiza",
		Nationality: "ecuatoriana",
		Bio:         "hola",
	}
	if got := Completeness(full); got != 1.0 {
		t.Errorf("Completeness(full) = %v, want 1.0", got)
	}

	if got := Completeness(models.Profile{}); got != 0 {
		t.Errorf("Completeness(empty) = %v, want 0", got)
	}

	half := models.Profile{Email: "ana@example.com"}
	if got := Completeness(half); got != 1.0/7.0 {
		t.Errorf("Completeness(one field) = %v, want %v", got, 1.0/7.0)
	}
}
