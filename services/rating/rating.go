package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ratingRepo "iscort/database/repository/rating"
	"iscort/models"
	"iscort/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultRatingService) SubmitRating(ctx context.Context, in SubmitRatingInput) (*models.Rating, error) {
	logger := utils.GetLogger()

	if err := validateInput(in); err != nil {
		return nil, err
	}

	// The listing must exist before a rating may reference it.
	if _, err := s.Listings.GetByID(in.ListingID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.ClientEmail))
	existing, err := s.Ratings.GetByListingAndEmail(in.ListingID, email)
	if err != nil && !errors.Is(err, ratingRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing rating: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateRating
	}

	rt := &models.Rating{
		ID:          uuid.New().String(),
		ListingID:   in.ListingID,
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: email,
		Score:       in.Score,
		Treatment:   in.Treatment,
		Punctuality: in.Punctuality,
		Hygiene:     in.Hygiene,
		Service:     in.Service,
		Comment:     in.Comment,
		ClientIP:    in.ClientIP,
		Verified:    false,
		SubmittedAt: time.Now(),
	}
	if err := s.Ratings.Create(rt); err != nil {
		if errors.Is(err, ratingRepo.ErrDuplicate) {
			// Concurrent submission lost the race against the unique index.
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	if err := s.RecomputeListingAggregate(ctx, in.ListingID); err != nil {
		logger.Error("failed to refresh listing aggregate after rating submission",
			zap.String("listingId", in.ListingID), zap.Error(err))
		return nil, err
	}

	logger.Info("rating submitted",
		zap.String("ratingId", rt.ID),
		zap.String("listingId", rt.ListingID),
		zap.Int("score", rt.Score))
	return rt, nil
}

func (s *DefaultRatingService) SetVerified(ctx context.Context, ratingID string, verified bool) (*models.Rating, error) {
	rt, err := s.Ratings.GetByID(ratingID)
	if err != nil {
		return nil, err
	}
	if rt.Verified != verified {
		if err := s.Ratings.SetVerified(ratingID, verified); err != nil {
			return nil, err
		}
		rt.Verified = verified
	}

	// The aggregate must follow every flag transition, in either direction.
	if err := s.RecomputeListingAggregate(ctx, rt.ListingID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("rating verification updated",
		zap.String("ratingId", ratingID),
		zap.Bool("verified", verified))
	return rt, nil
}

func (s *DefaultRatingService) ListingRatings(ctx context.Context, listingID string) ([]models.Rating, error) {
	if _, err := s.Listings.GetByID(listingID); err != nil {
		return nil, err
	}
	return s.Ratings.GetVerifiedByListing(listingID)
}

func (s *DefaultRatingService) PendingRatings(ctx context.Context) ([]models.Rating, error) {
	return s.Ratings.GetPending()
}

// RecomputeListingAggregate derives the cached average rating and review
// count from the listing's verified ratings and persists them. The
// computation is idempotent: a lost concurrent update is corrected by the
// next trigger.
func (s *DefaultRatingService) RecomputeListingAggregate(ctx context.Context, listingID string) error {
	ratings, err := s.Ratings.GetVerifiedByListing(listingID)
	if err != nil {
		return fmt.Errorf("failed to load verified ratings for listing %s: %w", listingID, err)
	}
	avg, count := ComputeAggregate(ratings)
	return s.Listings.UpdateAggregate(listingID, avg, count)
}

func validateInput(in SubmitRatingInput) error {
	if in.ListingID == "" || strings.TrimSpace(in.ClientEmail) == "" {
		return fmt.Errorf("listing id and client email are required")
	}
	if in.Score < 1 || in.Score > 5 {
		return ErrInvalidScore
	}
	for _, sub := range []*int{in.Treatment, in.Punctuality, in.Hygiene, in.Service} {
		if sub != nil && (*sub < 1 || *sub > 5) {
			return ErrInvalidScore
		}
	}
	return nil
}
