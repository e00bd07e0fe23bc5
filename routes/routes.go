package routes

import (
	"net/http"
	"time"

	"iscort/handlers"
	"iscort/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login, and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
	}
}

// RegisterListingRoutes registers listing browsing and management endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		// Public browsing endpoints.
		api.GET("", hb.PublicListingsHandler)
		api.GET("/:id", hb.GetListingHandler)
		api.POST("/:id/contact-click", hb.ContactClickHandler)
		api.POST("/:id/ratings", hb.SubmitRatingHandler)
		api.GET("/:id/ratings", hb.ListingRatingsHandler)

		// Owner endpoints require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		protected.POST("", hb.CreateListingHandler)
		protected.PATCH("/:id", hb.UpdateListingHandler)
		protected.DELETE("/:id", hb.DeleteListingHandler)
		protected.POST("/:id/photos", hb.AddPhotoHandler)
	}

	mine := r.Group("/api/my-listings")
	{
		mine.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		mine.GET("", hb.MyListingsHandler)
	}
}

// RegisterRankingRoutes registers the public top lists and stats endpoints.
func RegisterRankingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rankings")
	{
		api.GET("/home", hb.HomeRankingsHandler)
		api.GET("/category/:category", hb.TopByCategoryHandler)
		api.GET("/city/:city", hb.TopByCityHandler)
		api.GET("/featured", hb.FeaturedHandler)
		api.GET("/new", hb.NewAndVerifiedHandler)
		api.GET("/best-treatment", hb.BestByTreatmentHandler)
		api.GET("/stats", hb.SiteStatsHandler)
	}
}

// RegisterCatalogRoutes registers the static catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/cities", hb.CitiesHandler)
		api.GET("/categories", hb.CategoriesHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/profiles", hb.AdminHandler.GetAllProfilesHandler)
		adminGroup.PUT("/profiles/:id/verification", hb.AdminHandler.VerifyProfileHandler)
		adminGroup.GET("/ratings/pending", hb.AdminHandler.PendingRatingsHandler)
		adminGroup.PUT("/ratings/:id/verification", hb.AdminHandler.VerifyRatingHandler)
		adminGroup.POST("/rankings/recompute", hb.AdminHandler.RecomputeRankingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterRankingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
