package handlers

import (
	"net/http"
	"strconv"

	"iscort/services/ranking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultTopLimit = 10

// RankingHandler exposes the top lists and site statistics.
type RankingHandler struct {
	Service ranking.RankingService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(svc ranking.RankingService) *RankingHandler {
	return &RankingHandler{Service: svc}
}

func limitParam(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			return n
		}
	}
	return defaultTopLimit
}

// HomeRankingsHandler returns the cached home-page bundle.
func (h *RankingHandler) HomeRankingsHandler(c *gin.Context) {
	logger := getLogger(c)

	home, err := h.Service.HomeRankings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build home rankings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, home)
}

// TopByCategoryHandler returns the ranked listings of one category.
func (h *RankingHandler) TopByCategoryHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.TopByCategory(c.Request.Context(), c.Param("category"), limitParam(c))
	if err != nil {
		logger.Error("Failed to rank by category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// TopByCityHandler returns the ranked listings of one city.
func (h *RankingHandler) TopByCityHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.TopByCity(c.Request.Context(), c.Param("city"), limitParam(c))
	if err != nil {
		logger.Error("Failed to rank by city", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// FeaturedHandler returns the listings featured this month.
func (h *RankingHandler) FeaturedHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.FeaturedThisMonth(c.Request.Context(), limitParam(c))
	if err != nil {
		logger.Error("Failed to list featured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// NewAndVerifiedHandler returns recent listings from verified accounts.
func (h *RankingHandler) NewAndVerifiedHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.NewAndVerified(c.Request.Context(), limitParam(c))
	if err != nil {
		logger.Error("Failed to list new and verified", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// BestByTreatmentHandler returns listings ranked by the treatment sub-score.
func (h *RankingHandler) BestByTreatmentHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.BestByTreatment(c.Request.Context(), limitParam(c))
	if err != nil {
		logger.Error("Failed to rank by treatment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rankings"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SiteStatsHandler returns platform-wide figures.
func (h *RankingHandler) SiteStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Service.SiteStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute site stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
