package handlers

import (
	"errors"
	"net/http"

	profileRepo "iscort/database/repository/profile"
	"iscort/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes registration, login, and profile endpoints.
type AccountHandler struct {
	Service account.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// RegisterHandler creates a new account.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req account.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmailTaken), errors.Is(err, account.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register profile", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// LoginHandler authenticates credentials and returns a session token.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, profile, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

// GetProfileHandler returns the authenticated profile.
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID := c.GetString("profileID")
	profile, err := h.Service.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler applies partial edits to the authenticated profile.
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID := c.GetString("profileID")
	var req account.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(c.Request.Context(), profileID, req)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
