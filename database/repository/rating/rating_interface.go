package ratingRepo

import (
	"errors"
	"time"

	"iscort/models"
)

// ErrNotFound is returned when a referenced rating does not exist.
var ErrNotFound = errors.New("rating not found")

// ErrDuplicate is returned when a second rating arrives for the same
// (listing, client email) pair. The uniqueness constraint is enforced by a
// compound unique index on the collection.
var ErrDuplicate = errors.New("rating already exists for this listing and client email")

// RatingRepository defines methods for rating data access.
type RatingRepository interface {
	// GetByID retrieves a rating by its unique ID.
	GetByID(id string) (*models.Rating, error)
	// GetByListing retrieves all ratings for a listing.
	GetByListing(listingID string) ([]models.Rating, error)
	// GetVerifiedByListing retrieves the verified ratings for a listing.
	GetVerifiedByListing(listingID string) ([]models.Rating, error)
	// GetVerifiedByListings retrieves verified ratings across several listings.
	GetVerifiedByListings(listingIDs []string) ([]models.Rating, error)
	// GetVerifiedSince retrieves verified ratings submitted at or after the given time.
	GetVerifiedSince(since time.Time) ([]models.Rating, error)
	// GetByListingAndEmail retrieves a client's rating of a listing, if any.
	GetByListingAndEmail(listingID, clientEmail string) (*models.Rating, error)
	// GetPending retrieves ratings awaiting admin verification.
	GetPending() ([]models.Rating, error)
	// Create inserts a new rating record.
	Create(rating *models.Rating) error
	// SetVerified updates the admin verification flag of a rating.
	SetVerified(id string, verified bool) error
	// DeleteByListing removes every rating of a listing (cascade on listing delete).
	DeleteByListing(listingID string) error
	// CountVerified counts all verified ratings on the platform.
	CountVerified() (int, error)
	// GlobalVerifiedAverage computes the mean score over all verified ratings.
	// It returns 0 when no verified rating exists.
	GlobalVerifiedAverage() (float64, error)
}
