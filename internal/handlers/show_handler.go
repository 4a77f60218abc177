package handlers

import (
	"net/http"
	"time"

	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	showService *services.ShowService
}

func NewShowHandler(showService *services.ShowService) *ShowHandler {
	return &ShowHandler{showService: showService}
}

// start_time is RFC 3339; omitted means now
type showRequest struct {
	ArtistID  uint      `form:"artist_id" json:"artist_id"`
	VenueID   uint      `form:"venue_id" json:"venue_id"`
	StartTime time.Time `form:"start_time" json:"start_time"`
}

// ListShows returns every show with its venue and artist names
func (h *ShowHandler) ListShows(c *gin.Context) {
	listings, err := h.showService.ListShowsExpanded(middleware.DB(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve shows")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shows": listings})
}

// CreateShow books an artist at a venue
func (h *ShowHandler) CreateShow(c *gin.Context) {
	var req showRequest
	if !bind(c, &req) {
		return
	}

	var missing []string
	if req.ArtistID == 0 {
		missing = append(missing, "artist_id")
	}
	if req.VenueID == 0 {
		missing = append(missing, "venue_id")
	}
	if len(missing) > 0 {
		respondError(c, &services.ValidationError{Fields: missing}, "An error occurred. Show could not be listed.")
		return
	}

	show, err := h.showService.CreateShow(middleware.DB(c), req.ArtistID, req.VenueID, req.StartTime)
	if err != nil {
		respondError(c, err, "An error occurred. Show could not be listed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed!",
		"show": gin.H{
			"id":          show.ID,
			"artist_id":   show.ArtistID,
			"artist_name": show.Artist.Name,
			"venue_id":    show.VenueID,
			"venue_name":  show.Venue.Name,
			"start_time":  show.StartTime(),
		},
	})
}
