package ranking

import (
	"context"

	listingRepo "iscort/database/repository/listing"
	profileRepo "iscort/database/repository/profile"
	ratingRepo "iscort/database/repository/rating"
	"iscort/models"

	"github.com/go-redis/redis/v8"
)

// AggregateRefresher recomputes a listing's cached aggregate fields. It is
// satisfied by the rating service; the ranking batch job drives it through
// this narrow seam so both sides stay testable in isolation.
type AggregateRefresher interface {
	RecomputeListingAggregate(ctx context.Context, listingID string) error
}

// RankingService computes provider ranking scores and serves the ordered
// top lists built from cached listing aggregates.
type RankingService interface {
	// RecomputeProfileScore recomputes and persists a profile's composite
	// ranking score. Missing data degrades to zero contributions.
	RecomputeProfileScore(ctx context.Context, profileID string) (float64, error)
	// RecomputeAll refreshes every active listing aggregate, every profile
	// score, and the leaderboard positions. Run out of band.
	RecomputeAll(ctx context.Context) error

	// Top lists. Limits truncate after ordering.
	TopByCategory(ctx context.Context, category string, limit int) ([]models.RankingEntry, error)
	TopByCity(ctx context.Context, city string, limit int) ([]models.RankingEntry, error)
	FeaturedThisMonth(ctx context.Context, limit int) ([]models.RankingEntry, error)
	NewAndVerified(ctx context.Context, limit int) ([]models.RankingEntry, error)
	BestByTreatment(ctx context.Context, limit int) ([]models.RankingEntry, error)

	// SiteStats returns platform-wide figures for the home page.
	SiteStats(ctx context.Context) (*models.SiteStats, error)
	// HomeRankings bundles every home-page list, served from cache when warm.
	HomeRankings(ctx context.Context) (*models.HomeRankings, error)
}

// DefaultRankingService is the production implementation.
type DefaultRankingService struct {
	Listings   listingRepo.ListingRepository
	Ratings    ratingRepo.RatingRepository
	Profiles   profileRepo.ProfileRepository
	Aggregates AggregateRefresher
	Cache      *redis.Client
}
