package ranking

import (
	"errors"

	profileRepo "iscort/database/repository/profile"
	"iscort/models"
	"iscort/utils"

	"go.uber.org/zap"
)

// maxDisplayedServices caps how many service tags a top-list card shows.
const maxDisplayedServices = 3

// FormatEntry projects a listing and its owner into the display shape used
// by every top list. Contact details honor the listing's contact mode and a
// listing without photos falls back to the placeholder image.
func FormatEntry(l models.Listing, owner models.Profile) models.RankingEntry {
	services := l.ServicesList()
	if len(services) > maxDisplayedServices {
		services = services[:maxDisplayedServices]
	}
	return models.RankingEntry{
		ID:           l.ID,
		Title:        l.Title,
		User:         owner.DisplayName(),
		Age:          l.Age,
		City:         l.City,
		Price:        l.Price,
		Rating:       round1(l.AverageRating),
		TotalReviews: l.ReviewCount,
		PhotoURL:     l.FirstPhotoURL(),
		Category:     models.CategoryLabel(l.Category),
		Featured:     l.Featured,
		VIP:          l.VIP,
		Phone:        l.VisiblePhone(),
		WhatsApp:     l.WhatsApp,
		Services:     services,
	}
}

// ownersOf loads the owner profile of every listing into a map keyed by
// profile id. A listing whose owner is gone is logged and skipped rather
// than failing the whole list.
func (s *DefaultRankingService) ownersOf(listings []models.Listing) (map[string]models.Profile, error) {
	owners := make(map[string]models.Profile)
	for _, l := range listings {
		if _, ok := owners[l.ProfileID]; ok {
			continue
		}
		p, err := s.Profiles.GetByID(l.ProfileID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrNotFound) {
				utils.GetLogger().Warn("listing owner not found, skipping",
					zap.String("listingId", l.ID), zap.String("profileId", l.ProfileID))
				continue
			}
			return nil, err
		}
		owners[l.ProfileID] = *p
	}
	return owners, nil
}

func (s *DefaultRankingService) formatEntries(listings []models.Listing) ([]models.RankingEntry, error) {
	owners, err := s.ownersOf(listings)
	if err != nil {
		return nil, err
	}
	return s.formatEntriesWith(listings, owners), nil
}

func (s *DefaultRankingService) formatEntriesWith(listings []models.Listing, owners map[string]models.Profile) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(listings))
	for _, l := range listings {
		owner, ok := owners[l.ProfileID]
		if !ok {
			continue
		}
		entries = append(entries, FormatEntry(l, owner))
	}
	return entries
}
