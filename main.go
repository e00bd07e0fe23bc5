package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iscort/config"
	"iscort/cron"
	"iscort/database"
	listingRepoPkg "iscort/database/repository/listing"
	profileRepoPkg "iscort/database/repository/profile"
	ratingRepoPkg "iscort/database/repository/rating"
	"iscort/handlers"
	"iscort/middleware"
	"iscort/routes"
	"iscort/services/account"
	"iscort/services/listing"
	"iscort/services/ranking"
	"iscort/services/rating"
	"iscort/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRankingCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Profiles: profileRepo,
	}

	ratingService := &rating.DefaultRatingService{
		Ratings:  ratingRepo,
		Listings: listingRepo,
	}

	listingService := &listing.DefaultListingService{
		Listings: listingRepo,
		Ratings:  ratingRepo,
		Profiles: profileRepo,
		Storage:  cloudinaryStorageService,
	}

	rankingService := &ranking.DefaultRankingService{
		Listings:   listingRepo,
		Ratings:    ratingRepo,
		Profiles:   profileRepo,
		Aggregates: ratingService,
		Cache:      utils.GetRankingCacheClient(),
	}

	accountHandler := handlers.NewAccountHandler(accountService)
	listingHandler := handlers.NewListingHandler(listingService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	adminHandler := handlers.NewAdminHandler(accountService, ratingService, profileRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,

		// Account endpoints.
		RegisterHandler:      accountHandler.RegisterHandler,
		LoginHandler:         accountHandler.LoginHandler,
		GetProfileHandler:    accountHandler.GetProfileHandler,
		UpdateProfileHandler: accountHandler.UpdateProfileHandler,

		// Listing endpoints.
		CreateListingHandler:  listingHandler.CreateListingHandler,
		UpdateListingHandler:  listingHandler.UpdateListingHandler,
		GetListingHandler:     listingHandler.GetListingHandler,
		MyListingsHandler:     listingHandler.MyListingsHandler,
		PublicListingsHandler: listingHandler.PublicListingsHandler,
		DeleteListingHandler:  listingHandler.DeleteListingHandler,
		AddPhotoHandler:       listingHandler.AddPhotoHandler,
		ContactClickHandler:   listingHandler.ContactClickHandler,

		// Rating endpoints.
		SubmitRatingHandler:   ratingHandler.SubmitRatingHandler,
		ListingRatingsHandler: ratingHandler.ListingRatingsHandler,

		// Ranking endpoints.
		HomeRankingsHandler:    rankingHandler.HomeRankingsHandler,
		TopByCategoryHandler:   rankingHandler.TopByCategoryHandler,
		TopByCityHandler:       rankingHandler.TopByCityHandler,
		FeaturedHandler:        rankingHandler.FeaturedHandler,
		NewAndVerifiedHandler:  rankingHandler.NewAndVerifiedHandler,
		BestByTreatmentHandler: rankingHandler.BestByTreatmentHandler,
		SiteStatsHandler:       rankingHandler.SiteStatsHandler,

		// Catalog endpoints.
		CitiesHandler:     handlers.CitiesHandler,
		CategoriesHandler: handlers.CategoriesHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the background ranking worker and its scheduler.
	cron.InitRankingWorker(rankingService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server exited")
}
