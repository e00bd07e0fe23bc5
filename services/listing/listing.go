package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"iscort/catalog"
	listingRepo "iscort/database/repository/listing"
	"iscort/models"
	"iscort/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultListingService) Create(ctx context.Context, profileID string, in CreateListingInput) (*models.Listing, error) {
	logger := utils.GetLogger()

	if _, err := s.Profiles.GetByID(profileID); err != nil {
		return nil, err
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	city := catalog.CanonicalCity(in.City)
	if city == "" {
		return nil, ErrInvalidCity
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	contactMode := in.ContactMode
	if contactMode == "" {
		contactMode = models.ContactBoth
	}
	switch contactMode {
	case models.ContactBoth, models.ContactPhone, models.ContactEmail:
	default:
		return nil, fmt.Errorf("unknown contact mode %q", contactMode)
	}

	now := time.Now()
	l := &models.Listing{
		ID:           uuid.New().String(),
		ProfileID:    profileID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Category:     in.Category,
		City:         city,
		Country:      in.Country,
		Price:        in.Price,
		Gender:       in.Gender,
		Age:          in.Age,
		Address:      in.Address,
		Neighborhood: in.Neighborhood,
		Services:     in.Services,
		Phone:        in.Phone,
		WhatsApp:     in.WhatsApp,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		ContactMode:  contactMode,
		AcceptsCash:  in.AcceptsCash,
		AcceptsCard:  in.AcceptsCard,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Listings.Create(l); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	logger.Info("listing published",
		zap.String("listingId", l.ID),
		zap.String("profileId", profileID),
		zap.String("category", l.Category),
		zap.String("city", l.City))
	return l, nil
}

func (s *DefaultListingService) Update(ctx context.Context, profileID, listingID string, in UpdateListingInput) (*models.Listing, error) {
	l, err := s.owned(profileID, listingID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		l.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.City != nil {
		city := catalog.CanonicalCity(*in.City)
		if city == "" {
			return nil, ErrInvalidCity
		}
		l.City = city
	}
	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.Services != nil {
		l.Services = *in.Services
	}
	if in.Phone != nil {
		l.Phone = *in.Phone
	}
	if in.WhatsApp != nil {
		l.WhatsApp = *in.WhatsApp
	}
	if in.Email != nil {
		l.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.ContactMode != nil {
		switch *in.ContactMode {
		case models.ContactBoth, models.ContactPhone, models.ContactEmail:
			l.ContactMode = *in.ContactMode
		default:
			return nil, fmt.Errorf("unknown contact mode %q", *in.ContactMode)
		}
	}
	if in.Active != nil {
		l.Active = *in.Active
	}
	l.UpdatedAt = time.Now()

	if err := s.Listings.Update(l); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return l, nil
}

func (s *DefaultListingService) Get(ctx context.Context, listingID string) (*models.Listing, error) {
	l, err := s.Listings.GetByID(listingID)
	if err != nil {
		return nil, err
	}
	if err := s.Listings.IncrementViews(listingID); err != nil {
		utils.GetLogger().Warn("failed to bump view counter",
			zap.String("listingId", listingID), zap.Error(err))
	}
	return l, nil
}

func (s *DefaultListingService) MyListings(ctx context.Context, profileID string) ([]models.Listing, error) {
	return s.Listings.GetByProfile(profileID)
}

func (s *DefaultListingService) PublicListings(ctx context.Context, category, city string) ([]models.Listing, error) {
	if category != "" {
		if err := validateCategory(category); err != nil {
			return nil, err
		}
	}
	return s.Listings.Find(listingRepo.ListingFilter{
		Category:   category,
		City:       city,
		ActiveOnly: true,
	})
}

// Delete removes a listing, its ratings, and every stored photo. Photo
// deletions are best effort so an orphaned remote file never blocks the
// listing removal.
func (s *DefaultListingService) Delete(ctx context.Context, profileID, listingID string) error {
	logger := utils.GetLogger()

	l, err := s.owned(profileID, listingID)
	if err != nil {
		return err
	}

	if s.Storage != nil {
		for _, photo := range l.Photos {
			if photo.PublicID == "" {
				continue
			}
			if err := s.Storage.DeleteFile(ctx, photo.PublicID); err != nil {
				logger.Warn("failed to delete stored photo",
					zap.String("listingId", listingID),
					zap.String("publicId", photo.PublicID),
					zap.Error(err))
			}
		}
	}

	if err := s.Ratings.DeleteByListing(listingID); err != nil {
		return fmt.Errorf("failed to delete listing ratings: %w", err)
	}
	if err := s.Listings.Delete(listingID); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	logger.Info("listing deleted",
		zap.String("listingId", listingID),
		zap.String("profileId", profileID))
	return nil
}

func (s *DefaultListingService) RecordContactClick(ctx context.Context, listingID string) error {
	if _, err := s.Listings.GetByID(listingID); err != nil {
		return err
	}
	return s.Listings.IncrementContactClicks(listingID)
}

// owned loads a listing and checks that the profile owns it.
func (s *DefaultListingService) owned(profileID, listingID string) (*models.Listing, error) {
	l, err := s.Listings.GetByID(listingID)
	if err != nil {
		return nil, err
	}
	if l.ProfileID != profileID {
		return nil, ErrNotOwner
	}
	return l, nil
}

func validateCategory(category string) error {
	switch category {
	case models.CategoryFemale, models.CategoryMale, models.CategoryTrans:
		return nil
	}
	return ErrInvalidCategory
}
