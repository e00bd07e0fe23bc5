package listingRepo

import (
	"errors"
	"time"

	"iscort/models"
)

// ErrNotFound is returned when a referenced listing does not exist.
var ErrNotFound = errors.New("listing not found")

// ListingFilter narrows a listing query. Zero values leave the dimension
// unconstrained. City matching is case-insensitive.
type ListingFilter struct {
	Category     string
	City         string
	ProfileID    string
	CreatedAfter time.Time
	ActiveOnly   bool
}

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Listing, error)
	// GetByProfile retrieves all listings owned by a profile.
	GetByProfile(profileID string) ([]models.Listing, error)
	// Find retrieves listings matching the given filter.
	Find(filter ListingFilter) ([]models.Listing, error)
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// Update modifies an existing listing record.
	Update(listing *models.Listing) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
	// UpdateAggregate persists the cached average rating and review count.
	UpdateAggregate(id string, averageRating float64, reviewCount int) error
	// AddPhoto appends a photo to the listing.
	AddPhoto(id string, photo models.Photo) error
	// IncrementViews bumps the view counter.
	IncrementViews(id string) error
	// IncrementContactClicks bumps the contact-click counter.
	IncrementContactClicks(id string) error
	// CountActive counts currently active listings.
	CountActive() (int, error)
	// DistinctActiveCities lists the distinct cities of active listings.
	DistinctActiveCities() ([]string, error)
}
