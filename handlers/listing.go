package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	listingRepo "iscort/database/repository/listing"
	"iscort/services/listing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingHandler exposes listing publication and browsing endpoints.
type ListingHandler struct {
	Service listing.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Service: svc}
}

// CreateListingHandler publishes a new listing for the authenticated profile.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID := c.GetString("profileID")
	var req listing.CreateListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	l, err := h.Service.Create(c.Request.Context(), profileID, req)
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrInvalidCategory), errors.Is(err, listing.ErrInvalidCity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create listing", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, l)
}

// UpdateListingHandler applies partial edits to an owned listing.
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID := c.GetString("profileID")
	listingID := c.Param("id")
	var req listing.UpdateListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	l, err := h.Service.Update(c.Request.Context(), profileID, listingID, req)
	if err != nil {
		h.respondListingError(c, logger, err, "Failed to update listing")
		return
	}

	c.JSON(http.StatusOK, l)
}

// GetListingHandler returns a listing and records the visit.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	logger := getLogger(c)

	l, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondListingError(c, logger, err, "Failed to retrieve listing")
		return
	}

	c.JSON(http.StatusOK, l)
}

// MyListingsHandler returns the authenticated profile's listings.
func (h *ListingHandler) MyListingsHandler(c *gin.Context) {
	logger := getLogger(c)

	listings, err := h.Service.MyListings(c.Request.Context(), c.GetString("profileID"))
	if err != nil {
		logger.Error("Failed to list own listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// PublicListingsHandler returns active listings filtered by category and city.
func (h *ListingHandler) PublicListingsHandler(c *gin.Context) {
	logger := getLogger(c)

	listings, err := h.Service.PublicListings(c.Request.Context(), c.Query("category"), c.Query("city"))
	if err != nil {
		if errors.Is(err, listing.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to browse listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// DeleteListingHandler removes an owned listing with its ratings and photos.
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	logger := getLogger(c)

	err := h.Service.Delete(c.Request.Context(), c.GetString("profileID"), c.Param("id"))
	if err != nil {
		h.respondListingError(c, logger, err, "Failed to delete listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AddPhotoHandler accepts a multipart photo upload for an owned listing.
func (h *ListingHandler) AddPhotoHandler(c *gin.Context) {
	logger := getLogger(c)

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}

	// Stage the upload in a temp file for the storage backend.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	photo, err := h.Service.AddPhoto(c.Request.Context(), c.GetString("profileID"), c.Param("id"), tmpPath)
	if err != nil {
		if errors.Is(err, listing.ErrPhotoLimit) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		h.respondListingError(c, logger, err, "Failed to add photo")
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ContactClickHandler records a contact reveal on a listing.
func (h *ListingHandler) ContactClickHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.RecordContactClick(c.Request.Context(), c.Param("id")); err != nil {
		h.respondListingError(c, logger, err, "Failed to record contact click")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *ListingHandler) respondListingError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	switch {
	case errors.Is(err, listingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, listing.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, listing.ErrInvalidCity), errors.Is(err, listing.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
