package handlers

import (
	"fmt"
	"net/http"

	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/models"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

type venueRequest struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingTalent      *bool    `form:"-" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (r venueRequest) fields() services.VenueFields {
	return services.VenueFields{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		ImageLink:          r.ImageLink,
		Genres:             r.Genres,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

// ListVenues returns every venue grouped by city and state
func (h *VenueHandler) ListVenues(c *gin.Context) {
	areas, err := h.venueService.ListGroupedByArea(middleware.DB(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve venues")
		return
	}

	areaList := make([]gin.H, len(areas))
	for i, area := range areas {
		venues := make([]gin.H, len(area.Venues))
		for j := range area.Venues {
			venues[j] = h.venueSummary(&area.Venues[j])
		}
		areaList[i] = gin.H{
			"city":   area.City,
			"state":  area.State,
			"venues": venues,
		}
	}

	c.JSON(http.StatusOK, gin.H{"areas": areaList})
}

// SearchVenues matches venue names against search_term
func (h *VenueHandler) SearchVenues(c *gin.Context) {
	var req searchRequest
	if !bind(c, &req) {
		return
	}

	count, venues, err := h.venueService.Search(middleware.DB(c), req.SearchTerm)
	if err != nil {
		respondError(c, err, "Failed to search venues")
		return
	}

	data := make([]gin.H, len(venues))
	for i := range venues {
		data[i] = h.venueSummary(&venues[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       count,
		"data":        data,
		"search_term": req.SearchTerm,
	})
}

// GetVenue returns a venue with its past and upcoming shows
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	venue, err := h.venueService.GetVenueByID(middleware.DB(c), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve venue")
		return
	}

	shows := h.venueService.Shows(venue)
	c.JSON(http.StatusOK, gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"genres":               venue.Genres,
		"address":              venue.Address,
		"city":                 venue.City,
		"state":                venue.State,
		"phone":                venue.Phone,
		"website_link":         venue.WebsiteLink,
		"facebook_link":        venue.FacebookLink,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"image_link":           venue.ImageLink,
		"past_shows":           venueShows(shows.Past),
		"upcoming_shows":       venueShows(shows.Upcoming),
		"past_shows_count":     shows.PastCount(),
		"upcoming_shows_count": shows.UpcomingCount(),
	})
}

// CreateVenue lists a new venue
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req venueRequest
	if !bind(c, &req) || !bindCheckbox(c, "seeking_talent", &req.SeekingTalent) {
		return
	}

	venue, err := h.venueService.CreateVenue(middleware.DB(c), req.fields())
	if err != nil {
		respondError(c, err, fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue":   venue,
	})
}

// EditVenueForm returns the venue's current editable fields
func (h *VenueHandler) EditVenueForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	venue, err := h.venueService.GetVenueByID(middleware.DB(c), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve venue")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   venue.ID,
		"form": services.VenueFieldsOf(venue),
	})
}

// UpdateVenue replaces the venue's editable fields
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req venueRequest
	if !bind(c, &req) || !bindCheckbox(c, "seeking_talent", &req.SeekingTalent) {
		return
	}

	venue, err := h.venueService.UpdateVenue(middleware.DB(c), id, req.fields())
	if err != nil {
		respondError(c, err, fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
		"venue":   venue,
	})
}

// DeleteVenue removes a venue and its shows
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.venueService.DeleteVenue(middleware.DB(c), id)
	if err != nil {
		respondError(c, err, "An error occurred. Venue could not be deleted.")
		return
	}

	middleware.Logger(c).Info().Uint("venue_id", id).Int64("shows_removed", removed).Msg("venue deleted")
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"shows_removed": removed,
		"message":       "Venue was successfully deleted!",
	})
}

func (h *VenueHandler) venueSummary(v *models.Venue) gin.H {
	return gin.H{
		"id":                 v.ID,
		"name":               v.Name,
		"num_upcoming_shows": h.venueService.Shows(v).UpcomingCount(),
	}
}

func venueShows(shows []models.Show) []gin.H {
	out := make([]gin.H, len(shows))
	for i, show := range shows {
		row := gin.H{
			"artist_id":  show.ArtistID,
			"start_time": show.StartTime(),
		}
		if show.Artist != nil {
			row["artist_name"] = show.Artist.Name
			row["artist_image_link"] = show.Artist.ImageLink
		}
		out[i] = row
	}
	return out
}
