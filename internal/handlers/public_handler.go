package handlers

import (
	"net/http"

	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	venueService  *services.VenueService
	artistService *services.ArtistService
	showService   *services.ShowService
}

func NewPublicHandler(venueService *services.VenueService, artistService *services.ArtistService, showService *services.ShowService) *PublicHandler {
	return &PublicHandler{
		venueService:  venueService,
		artistService: artistService,
		showService:   showService,
	}
}

// Home reports how many venues, artists and shows are listed
func (h *PublicHandler) Home(c *gin.Context) {
	db := middleware.DB(c)

	venues, err := h.venueService.CountVenues(db)
	if err != nil {
		respondError(c, err, "Failed to load catalog")
		return
	}
	artists, err := h.artistService.CountArtists(db)
	if err != nil {
		respondError(c, err, "Failed to load catalog")
		return
	}
	shows, err := h.showService.CountShows(db)
	if err != nil {
		respondError(c, err, "Failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venues":  venues,
		"artists": artists,
		"shows":   shows,
	})
}

// Health reports liveness
func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// NotFound answers unknown routes
func (h *PublicHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// Recovered answers a request whose handler panicked
func (h *PublicHandler) Recovered(c *gin.Context, recovered any) {
	middleware.Logger(c).Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
