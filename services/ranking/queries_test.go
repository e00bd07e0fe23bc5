package ranking

import (
	"testing"
	"time"

	"iscort/models"
)

func listingWith(id string, avg float64, reviews int, updated time.Time) models.Listing {
	return models.Listing{
		ID:            id,
		AverageRating: avg,
		ReviewCount:   reviews,
		UpdatedAt:     updated,
	}
}

func ids(listings []models.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func sameOrder(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByRankOrdering(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	listings := []models.Listing{
		listingWith("low", 3.0, 50, base),
		listingWith("tie-few", 4.5, 2, base),
		listingWith("tie-many", 4.5, 9, base),
		listingWith("top", 4.8, 3, base),
	}
	SortByRank(listings)
	if got := ids(listings); !sameOrder(got, "top", "tie-many", "tie-few", "low") {
		t.Errorf("SortByRank order = %v", got)
	}
}

func TestSortByRankRecencyTieBreak(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	listings := []models.Listing{
		listingWith("older", 4.0, 5, base),
		listingWith("newer", 4.0, 5, base.Add(48*time.Hour)),
	}
	SortByRank(listings)
	if got := ids(listings); !sameOrder(got, "newer", "older") {
		t.Errorf("recency tie-break order = %v", got)
	}
}

func TestSortByRankDeterministic(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	build := func() []models.Listing {
		return []models.Listing{
			listingWith("a", 4.0, 3, base),
			listingWith("b", 4.5, 1, base),
			listingWith("c", 4.0, 7, base),
			listingWith("d", 4.5, 1, base.Add(time.Hour)),
		}
	}
	first := build()
	SortByRank(first)
	for i := 0; i < 5; i++ {
		next := build()
		SortByRank(next)
		if !sameOrder(ids(first), ids(next)...) {
			t.Fatalf("sort not deterministic: %v vs %v", ids(first), ids(next))
		}
	}
}

func TestTruncate(t *testing.T) {
	listings := []models.Listing{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if got := Truncate(listings, 2); len(got) != 2 {
		t.Errorf("Truncate(3, 2) len = %d", len(got))
	}
	if got := Truncate(listings, 0); len(got) != 3 {
		t.Errorf("Truncate(3, 0) len = %d", len(got))
	}
	if got := Truncate(listings, 10); len(got) != 3 {
		t.Errorf("Truncate(3, 10) len = %d", len(got))
	}
}

func TestFilterFeaturedThresholds(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	listings := []models.Listing{
		listingWith("qualifies", 4.2, 5, base),
		listingWith("low-avg", 3.9, 10, base),
		// High average but too few reviews.
		listingWith("few-reviews", 4.5, 2, base),
		listingWith("no-recent", 4.8, 8, base),
	}
	recent := map[string]int{
		"qualifies":   2,
		"low-avg":     3,
		"few-reviews": 1,
	}

	got := ids(FilterFeatured(listings, recent))
	if !sameOrder(got, "qualifies") {
		t.Errorf("FilterFeatured = %v, want [qualifies]", got)
	}
}

func TestFilterFeaturedOrdering(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	listings := []models.Listing{
		listingWith("busy", 4.2, 6, base),
		listingWith("best", 4.9, 4, base),
		listingWith("quiet", 4.2, 5, base),
	}
	recent := map[string]int{"busy": 5, "best": 1, "quiet": 2}

	got := ids(FilterFeatured(listings, recent))
	if !sameOrder(got, "best", "busy", "quiet") {
		t.Errorf("FilterFeatured order = %v", got)
	}
}

func TestFilterNewAndVerified(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	fresh := models.Listing{ID: "fresh", ProfileID: "p1", CreatedAt: now.Add(-2 * 24 * time.Hour)}
	fresher := models.Listing{ID: "fresher", ProfileID: "p1", CreatedAt: now.Add(-1 * 24 * time.Hour)}
	old := models.Listing{ID: "old", ProfileID: "p1", CreatedAt: now.Add(-30 * 24 * time.Hour)}
	unverifiedOwner := models.Listing{ID: "unverified", ProfileID: "p2", CreatedAt: now.Add(-1 * 24 * time.Hour)}

	emailVerified := map[string]bool{"p1": true, "p2": false}

	got := ids(FilterNewAndVerified(
		[]models.Listing{fresh, old, unverifiedOwner, fresher},
		emailVerified, now))
	if !sameOrder(got, "fresher", "fresh") {
		t.Errorf("FilterNewAndVerified = %v, want [fresher fresh]", got)
	}
}

func TestFilterNewAndVerifiedBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	onEdge := models.Listing{ID: "edge", ProfileID: "p1", CreatedAt: now.Add(-newListingWindow)}
	past := models.Listing{ID: "past", ProfileID: "p1", CreatedAt: now.Add(-newListingWindow - time.Second)}

	got := ids(FilterNewAndVerified(
		[]models.Listing{onEdge, past},
		map[string]bool{"p1": true}, now))
	if !sameOrder(got, "edge") {
		t.Errorf("window boundary = %v, want [edge]", got)
	}
}

func intp(v int) *int { return &v }

func TestRankByTreatment(t *testing.T) {
	listings := []models.Listing{
		{ID: "warm"},
		{ID: "warmer"},
		{ID: "single"},
		{ID: "no-subscore"},
	}
	verified := []models.Rating{
		{ListingID: "warm", Verified: true, Treatment: intp(4)},
		{ListingID: "warm", Verified: true, Treatment: intp(4)},
		{ListingID: "warmer", Verified: true, Treatment: intp(5)},
		{ListingID: "warmer", Verified: true, Treatment: intp(5)},
		// One review is below the minimum.
		{ListingID: "single", Verified: true, Treatment: intp(5)},
		{ListingID: "no-subscore", Verified: true},
		{ListingID: "no-subscore", Verified: true},
	}

	ranked := rankByTreatment(listings, verified)
	if len(ranked) != 2 {
		t.Fatalf("rankByTreatment len = %d, want 2", len(ranked))
	}
	if ranked[0].listing.ID != "warmer" || ranked[1].listing.ID != "warm" {
		t.Errorf("rankByTreatment order = [%s %s]", ranked[0].listing.ID, ranked[1].listing.ID)
	}
	if ranked[0].avgTreatment != 5.0 {
		t.Errorf("warmer avgTreatment = %v, want 5.0", ranked[0].avgTreatment)
	}
}

func TestRankByTreatmentMixedSubscorePresence(t *testing.T) {
	listings := []models.Listing{{ID: "mixed"}}
	verified := []models.Rating{
		{ListingID: "mixed", Verified: true, Treatment: intp(3)},
		// Counts toward the review minimum but not the average.
		{ListingID: "mixed", Verified: true},
	}

	ranked := rankByTreatment(listings, verified)
	if len(ranked) != 1 {
		t.Fatalf("rankByTreatment len = %d, want 1", len(ranked))
	}
	if ranked[0].avgTreatment != 3.0 {
		t.Errorf("avgTreatment = %v, want 3.0", ranked[0].avgTreatment)
	}
}
