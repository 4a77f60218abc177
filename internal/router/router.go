// Package router assembles the HTTP engine for the catalog API.
package router

import (
	"github.com/fyyur/backend/internal/config"
	"github.com/fyyur/backend/internal/handlers"
	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Options struct {
	Config *config.Config
	DB     *gorm.DB
	// Redis is optional; without it requests are not rate limited
	Redis  *redis.Client
	Logger zerolog.Logger
	// Now overrides the clock used for upcoming and past shows
	Now services.Clock
}

// New builds the gin engine with all catalog routes registered.
func New(opts Options) *gin.Engine {
	cfg := opts.Config

	venueService := services.NewVenueService(opts.Now)
	artistService := services.NewArtistService(opts.Now)
	showService := services.NewShowService(opts.Now)

	venueHandler := handlers.NewVenueHandler(venueService)
	artistHandler := handlers.NewArtistHandler(artistService)
	showHandler := handlers.NewShowHandler(showService)
	publicHandler := handlers.NewPublicHandler(venueService, artistService, showService)

	router := gin.New()
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(gin.CustomRecovery(publicHandler.Recovered))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(opts.Redis, cfg))

	router.NoRoute(publicHandler.NotFound)

	// Health check outside API group (no /api/v1 prefix)
	router.GET("/health", publicHandler.Health)
	if cfg.MetricsEnabled {
		router.GET("/metrics", middleware.MetricsHandler())
	}

	api := router.Group("/api/v1")
	api.Use(middleware.DBSession(opts.DB))
	{
		api.GET("/", publicHandler.Home)
		api.GET("/health", publicHandler.Health)

		venues := api.Group("/venues")
		{
			venues.GET("", venueHandler.ListVenues)
			venues.POST("/search", venueHandler.SearchVenues)
			venues.POST("/create", venueHandler.CreateVenue)
			venues.GET("/:id", venueHandler.GetVenue)
			venues.GET("/:id/edit", venueHandler.EditVenueForm)
			venues.POST("/:id/edit", venueHandler.UpdateVenue)
			venues.DELETE("/:id", venueHandler.DeleteVenue)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", artistHandler.ListArtists)
			artists.POST("/search", artistHandler.SearchArtists)
			artists.POST("/create", artistHandler.CreateArtist)
			artists.GET("/:id", artistHandler.GetArtist)
			artists.GET("/:id/edit", artistHandler.EditArtistForm)
			artists.POST("/:id/edit", artistHandler.UpdateArtist)
		}

		shows := api.Group("/shows")
		{
			shows.GET("", showHandler.ListShows)
			shows.POST("/create", showHandler.CreateShow)
		}
	}

	return router
}
