package handlers

import (
	profileRepoPkg "iscort/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	// Account endpoints
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Listing endpoints
	CreateListingHandler  gin.HandlerFunc
	UpdateListingHandler  gin.HandlerFunc
	GetListingHandler     gin.HandlerFunc
	MyListingsHandler     gin.HandlerFunc
	PublicListingsHandler gin.HandlerFunc
	DeleteListingHandler  gin.HandlerFunc
	AddPhotoHandler       gin.HandlerFunc
	ContactClickHandler   gin.HandlerFunc

	// Rating endpoints
	SubmitRatingHandler   gin.HandlerFunc
	ListingRatingsHandler gin.HandlerFunc

	// Ranking endpoints
	HomeRankingsHandler    gin.HandlerFunc
	TopByCategoryHandler   gin.HandlerFunc
	TopByCityHandler       gin.HandlerFunc
	FeaturedHandler        gin.HandlerFunc
	NewAndVerifiedHandler  gin.HandlerFunc
	BestByTreatmentHandler gin.HandlerFunc
	SiteStatsHandler       gin.HandlerFunc

	// Catalog endpoints
	CitiesHandler     gin.HandlerFunc
	CategoriesHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
