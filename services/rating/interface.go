package rating

import (
	"context"

	listingRepo "iscort/database/repository/listing"
	ratingRepo "iscort/database/repository/rating"
	"iscort/models"
)

// SubmitRatingInput carries a client's review of a listing.
type SubmitRatingInput struct {
	ListingID   string `json:"listingId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Score       int    `json:"score"`
	Treatment   *int   `json:"treatment,omitempty"`
	Punctuality *int   `json:"punctuality,omitempty"`
	Hygiene     *int   `json:"hygiene,omitempty"`
	Service     *int   `json:"service,omitempty"`
	Comment     string `json:"comment"`
	ClientIP    string `json:"-"`
}

// RatingService manages rating submission, admin verification, and the
// listing aggregate fields derived from verified ratings.
type RatingService interface {
	// SubmitRating stores a new (unverified) rating and refreshes the
	// listing aggregate. A duplicate (listing, client email) pair is
	// rejected with ErrDuplicateRating.
	SubmitRating(ctx context.Context, in SubmitRatingInput) (*models.Rating, error)
	// SetVerified toggles the admin verification flag and refreshes the
	// listing aggregate. Both transitions trigger recomputation.
	SetVerified(ctx context.Context, ratingID string, verified bool) (*models.Rating, error)
	// ListingRatings returns the verified ratings of a listing.
	ListingRatings(ctx context.Context, listingID string) ([]models.Rating, error)
	// PendingRatings returns ratings awaiting admin review.
	PendingRatings(ctx context.Context) ([]models.Rating, error)
	// RecomputeListingAggregate recomputes and persists the cached average
	// rating and review count of a listing from its verified ratings.
	RecomputeListingAggregate(ctx context.Context, listingID string) error
}

// DefaultRatingService is the production implementation.
type DefaultRatingService struct {
	Ratings  ratingRepo.RatingRepository
	Listings listingRepo.ListingRepository
}
