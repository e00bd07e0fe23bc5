package handlers

import (
	"errors"
	"net/http"

	"iscort/cron"
	profileRepo "iscort/database/repository/profile"
	ratingRepo "iscort/database/repository/rating"
	"iscort/services/account"
	"iscort/services/rating"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Accounts account.AccountService
	Ratings  rating.RatingService
	Profiles profileRepo.ProfileRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as account.AccountService, rs rating.RatingService, pr profileRepo.ProfileRepository) *AdminHandler {
	return &AdminHandler{Accounts: as, Ratings: rs, Profiles: pr}
}

// PendingRatingsHandler returns ratings awaiting verification.
func (ah *AdminHandler) PendingRatingsHandler(c *gin.Context) {
	ratings, err := ah.Ratings.PendingRatings(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch pending ratings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// VerifyRatingHandler flips a rating's verification flag and refreshes the
// listing aggregate.
func (ah *AdminHandler) VerifyRatingHandler(c *gin.Context) {
	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rt, err := ah.Ratings.SetVerified(c.Request.Context(), c.Param("id"), req.Verified)
	if err != nil {
		if errors.Is(err, ratingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		zap.L().Error("Failed to set rating verification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}
	c.JSON(http.StatusOK, rt)
}

// VerifyProfileHandler flips one of a profile's verification flags.
func (ah *AdminHandler) VerifyProfileHandler(c *gin.Context) {
	var req struct {
		Flag  string `json:"flag"`
		Value bool   `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := ah.Accounts.SetVerification(c.Request.Context(), c.Param("id"), req.Flag, req.Value); err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		zap.L().Error("Failed to set profile verification", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetAllProfilesHandler returns all profiles.
func (ah *AdminHandler) GetAllProfilesHandler(c *gin.Context) {
	profiles, err := ah.Profiles.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch all profiles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// RecomputeRankingsHandler enqueues a full ranking recomputation. The
// background worker performs the heavy lifting.
func (ah *AdminHandler) RecomputeRankingsHandler(c *gin.Context) {
	if err := cron.EnqueueRecompute(); err != nil {
		zap.L().Error("Failed to enqueue ranking recomputation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enqueue recomputation"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "enqueued"})
}
