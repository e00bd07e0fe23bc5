package ranking

import (
	"context"
	"sort"
	"time"

	listingRepo "iscort/database/repository/listing"
	"iscort/models"
)

// Windows used by the special top lists.
const (
	featuredWindow      = 30 * 24 * time.Hour
	newListingWindow    = 14 * 24 * time.Hour
	featuredMinRating   = 4.0
	featuredMinReviews  = 3
	treatmentMinReviews = 2
)

func activeFilter() listingRepo.ListingFilter {
	return listingRepo.ListingFilter{ActiveOnly: true}
}

// SortByRank orders listings by the canonical three-level key used across
// every top list: average rating descending, review count descending, most
// recently updated first. The recency tie-break keeps freshly updated
// listings from starving behind older ones with identical aggregates.
func SortByRank(listings []models.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
}

// Truncate keeps the first limit listings after ordering. A non-positive
// limit returns the slice unchanged.
func Truncate(listings []models.Listing, limit int) []models.Listing {
	if limit > 0 && len(listings) > limit {
		return listings[:limit]
	}
	return listings
}

// FilterFeatured keeps listings qualifying for the "featured this month"
// list: at least one verified rating inside the window, average rating at
// or above the threshold, and a minimum number of verified reviews. The
// result is ordered by average rating descending, then by the count of
// in-window verified ratings descending.
func FilterFeatured(listings []models.Listing, recentVerified map[string]int) []models.Listing {
	var out []models.Listing
	for _, l := range listings {
		if recentVerified[l.ID] == 0 {
			continue
		}
		if l.AverageRating < featuredMinRating || l.ReviewCount < featuredMinReviews {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		return recentVerified[a.ID] > recentVerified[b.ID]
	})
	return out
}

// FilterNewAndVerified keeps listings created inside the new-listing window
// whose owner has a verified email, ordered by creation time descending.
func FilterNewAndVerified(listings []models.Listing, emailVerified map[string]bool, now time.Time) []models.Listing {
	cutoff := now.Add(-newListingWindow)
	var out []models.Listing
	for _, l := range listings {
		if l.CreatedAt.Before(cutoff) {
			continue
		}
		if !emailVerified[l.ProfileID] {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// treatmentRank pairs a listing with its verified treatment average.
type treatmentRank struct {
	listing      models.Listing
	avgTreatment float64
	reviews      int
}

// rankByTreatment computes per-listing averages of the optional treatment
// sub-score over verified ratings. Listings without any treatment sub-score
// or with fewer verified reviews than the minimum are dropped.
func rankByTreatment(listings []models.Listing, verified []models.Rating) []treatmentRank {
	type acc struct {
		sum, n  int
		reviews int
	}
	perListing := make(map[string]*acc)
	for _, r := range verified {
		a := perListing[r.ListingID]
		if a == nil {
			a = &acc{}
			perListing[r.ListingID] = a
		}
		a.reviews++
		if r.Treatment != nil {
			a.sum += *r.Treatment
			a.n++
		}
	}

	var out []treatmentRank
	for _, l := range listings {
		a := perListing[l.ID]
		if a == nil || a.n == 0 || a.reviews < treatmentMinReviews {
			continue
		}
		out = append(out, treatmentRank{
			listing:      l,
			avgTreatment: float64(a.sum) / float64(a.n),
			reviews:      a.reviews,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].avgTreatment != out[j].avgTreatment {
			return out[i].avgTreatment > out[j].avgTreatment
		}
		return out[i].reviews > out[j].reviews
	})
	return out
}

func (s *DefaultRankingService) TopByCategory(ctx context.Context, category string, limit int) ([]models.RankingEntry, error) {
	listings, err := s.Listings.Find(listingRepo.ListingFilter{Category: category, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	SortByRank(listings)
	return s.formatEntries(Truncate(listings, limit))
}

func (s *DefaultRankingService) TopByCity(ctx context.Context, city string, limit int) ([]models.RankingEntry, error) {
	listings, err := s.Listings.Find(listingRepo.ListingFilter{City: city, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	SortByRank(listings)
	return s.formatEntries(Truncate(listings, limit))
}

func (s *DefaultRankingService) FeaturedThisMonth(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	listings, err := s.Listings.Find(activeFilter())
	if err != nil {
		return nil, err
	}
	recent, err := s.Ratings.GetVerifiedSince(time.Now().Add(-featuredWindow))
	if err != nil {
		return nil, err
	}
	recentCounts := make(map[string]int, len(recent))
	for _, r := range recent {
		recentCounts[r.ListingID]++
	}
	featured := FilterFeatured(listings, recentCounts)
	return s.formatEntries(Truncate(featured, limit))
}

func (s *DefaultRankingService) NewAndVerified(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	now := time.Now()
	listings, err := s.Listings.Find(listingRepo.ListingFilter{
		ActiveOnly:   true,
		CreatedAfter: now.Add(-newListingWindow),
	})
	if err != nil {
		return nil, err
	}

	owners, err := s.ownersOf(listings)
	if err != nil {
		return nil, err
	}
	emailVerified := make(map[string]bool, len(owners))
	for id, p := range owners {
		emailVerified[id] = p.Verification.EmailVerified
	}

	fresh := FilterNewAndVerified(listings, emailVerified, now)
	return s.formatEntriesWith(Truncate(fresh, limit), owners), nil
}

func (s *DefaultRankingService) BestByTreatment(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	listings, err := s.Listings.Find(activeFilter())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	verified, err := s.Ratings.GetVerifiedByListings(ids)
	if err != nil {
		return nil, err
	}

	ranked := rankByTreatment(listings, verified)
	picked := make([]models.Listing, 0, len(ranked))
	for _, r := range ranked {
		picked = append(picked, r.listing)
	}
	return s.formatEntries(Truncate(picked, limit))
}
