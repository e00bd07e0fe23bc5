package listing

import (
	"context"

	listingRepo "iscort/database/repository/listing"
	profileRepo "iscort/database/repository/profile"
	ratingRepo "iscort/database/repository/rating"
	"iscort/models"
	"iscort/services/storage"
)

// CreateListingInput carries a new listing publication.
type CreateListingInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Price        float64 `json:"price"`
	Gender       string  `json:"gender"`
	Age          int     `json:"age"`
	Address      string  `json:"address"`
	Neighborhood string  `json:"neighborhood"`
	Services     string  `json:"services"`
	Phone        string  `json:"phone"`
	WhatsApp     bool    `json:"whatsapp"`
	Email        string  `json:"email"`
	ContactMode  string  `json:"contactMode"`
	AcceptsCash  bool    `json:"acceptsCash"`
	AcceptsCard  bool    `json:"acceptsCard"`
}

// UpdateListingInput carries the editable listing fields. Nil pointers leave
// the field untouched.
type UpdateListingInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	City        *string  `json:"city,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Services    *string  `json:"services,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	WhatsApp    *bool    `json:"whatsapp,omitempty"`
	Email       *string  `json:"email,omitempty"`
	ContactMode *string  `json:"contactMode,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ListingService manages listing publication, edits, photos, and counters.
type ListingService interface {
	// Create publishes a new listing owned by the given profile.
	Create(ctx context.Context, profileID string, in CreateListingInput) (*models.Listing, error)
	// Update applies partial edits to a listing owned by the profile.
	Update(ctx context.Context, profileID, listingID string, in UpdateListingInput) (*models.Listing, error)
	// Get retrieves a listing and bumps its view counter.
	Get(ctx context.Context, listingID string) (*models.Listing, error)
	// MyListings retrieves the listings owned by a profile.
	MyListings(ctx context.Context, profileID string) ([]models.Listing, error)
	// PublicListings retrieves active listings filtered by category and city.
	// Either filter may be empty.
	PublicListings(ctx context.Context, category, city string) ([]models.Listing, error)
	// Delete removes a listing along with its ratings and stored photos.
	Delete(ctx context.Context, profileID, listingID string) error
	// AddPhoto uploads a photo and attaches it, honoring the plan limit.
	AddPhoto(ctx context.Context, profileID, listingID, localFilePath string) (*models.Photo, error)
	// RecordContactClick bumps the contact-click counter.
	RecordContactClick(ctx context.Context, listingID string) error
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Listings listingRepo.ListingRepository
	Ratings  ratingRepo.RatingRepository
	Profiles profileRepo.ProfileRepository
	Storage  storage.StorageService
}
