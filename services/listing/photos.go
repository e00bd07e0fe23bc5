package listing

import (
	"context"
	"fmt"
	"time"

	"iscort/models"
	"iscort/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// photoFolder is the remote folder listing photos are uploaded into.
const photoFolder = "listings"

// AddPhoto uploads a photo and attaches it to the listing. The owner's plan
// caps how many photos the listing may carry.
func (s *DefaultListingService) AddPhoto(ctx context.Context, profileID, listingID, localFilePath string) (*models.Photo, error) {
	l, err := s.owned(profileID, listingID)
	if err != nil {
		return nil, err
	}

	owner, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if len(l.Photos) >= owner.MaxPhotos() {
		return nil, ErrPhotoLimit
	}

	result, err := s.Storage.UploadFile(ctx, localFilePath, photoFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := models.Photo{
		ID:         uuid.New().String(),
		URL:        result.URL,
		PublicID:   result.PublicID,
		UploadedAt: time.Now(),
	}
	if err := s.Listings.AddPhoto(listingID, photo); err != nil {
		// Roll back the remote upload so the file does not leak.
		if delErr := s.Storage.DeleteFile(ctx, result.PublicID); delErr != nil {
			utils.GetLogger().Warn("failed to roll back photo upload",
				zap.String("publicId", result.PublicID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to attach photo: %w", err)
	}

	utils.GetLogger().Info("photo added",
		zap.String("listingId", listingID),
		zap.String("photoId", photo.ID))
	return &photo, nil
}
