package ranking

import (
	"context"

	"iscort/models"
)

// SiteStats assembles the platform-wide counters shown on the home page.
func (s *DefaultRankingService) SiteStats(ctx context.Context) (*models.SiteStats, error) {
	listings, err := s.Listings.CountActive()
	if err != nil {
		return nil, err
	}
	cities, err := s.Listings.DistinctActiveCities()
	if err != nil {
		return nil, err
	}
	reviews, err := s.Ratings.CountVerified()
	if err != nil {
		return nil, err
	}
	avg, err := s.Ratings.GlobalVerifiedAverage()
	if err != nil {
		return nil, err
	}
	return &models.SiteStats{
		TotalListings:       listings,
		TotalCities:         len(cities),
		TotalReviews:        reviews,
		AverageSatisfaction: round1(avg),
	}, nil
}
