package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	profileRepo "iscort/database/repository/profile"
	"iscort/utils"

	"github.com/gin-gonic/gin"
)

const (
	authCachePrefix = "auth:profile:"
	authCacheTTL    = time.Hour
)

// JWTAuthMiddleware authenticates a request by its Bearer token and places
// the profile id into the context under "profileID". The profile must still
// exist; a token for a deleted account is rejected. Existence checks are
// cached in Redis so repeated requests skip the database; a nil cache client
// degrades to a lookup per request.
func JWTAuthMiddleware(profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		profileID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || profileID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx := context.Background()
		cache := utils.CacheClient
		cacheKey := authCachePrefix + profileID

		if cache != nil {
			if hit, err := cache.Get(ctx, cacheKey).Result(); err == nil && hit == "1" {
				_ = cache.Expire(ctx, cacheKey, authCacheTTL).Err()
				c.Set("profileID", profileID)
				c.Next()
				return
			}
		}

		if _, err := profiles.GetByID(profileID); err != nil {
			if errors.Is(err, profileRepo.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication error"})
			return
		}

		if cache != nil {
			_ = cache.Set(ctx, cacheKey, "1", authCacheTTL).Err()
		}

		c.Set("profileID", profileID)
		c.Next()
	}
}
