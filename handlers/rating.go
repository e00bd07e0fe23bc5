package handlers

import (
	"errors"
	"net/http"

	listingRepo "iscort/database/repository/listing"
	"iscort/middleware"
	"iscort/services/rating"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingHandler exposes public rating submission and browsing endpoints.
type RatingHandler struct {
	Service rating.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(svc rating.RatingService) *RatingHandler {
	return &RatingHandler{Service: svc}
}

// SubmitRatingHandler accepts a client's review of a listing. Ratings enter
// unverified and do not count toward aggregates until an admin verifies them.
func (h *RatingHandler) SubmitRatingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req rating.SubmitRatingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ListingID = c.Param("id")
	req.ClientIP = middleware.ClientIP(c)

	rt, err := h.Service.SubmitRating(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrDuplicateRating):
			c.JSON(http.StatusConflict, gin.H{"error": "You have already rated this listing"})
		case errors.Is(err, rating.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, listingRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		default:
			logger.Error("Failed to submit rating", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, rt)
}

// ListingRatingsHandler returns the verified ratings of a listing.
func (h *RatingHandler) ListingRatingsHandler(c *gin.Context) {
	logger := getLogger(c)

	ratings, err := h.Service.ListingRatings(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		logger.Error("Failed to list ratings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ratings"})
		return
	}

	c.JSON(http.StatusOK, ratings)
}
