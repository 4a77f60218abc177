package handlers

import (
	"fmt"
	"net/http"

	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/models"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ArtistHandler serves artist routes. Artists have no delete route.
type ArtistHandler struct {
	artistService *services.ArtistService
}

func NewArtistHandler(artistService *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

type artistRequest struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingVenue       *bool    `form:"-" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (r artistRequest) fields() services.ArtistFields {
	return services.ArtistFields{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Genres:             r.Genres,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

// ListArtists returns the id and name of every artist
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.artistService.ListArtists(middleware.DB(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve artists")
		return
	}

	list := make([]gin.H, len(artists))
	for i, artist := range artists {
		list[i] = gin.H{"id": artist.ID, "name": artist.Name}
	}

	c.JSON(http.StatusOK, gin.H{"artists": list})
}

// SearchArtists matches artist names against search_term
func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	var req searchRequest
	if !bind(c, &req) {
		return
	}

	count, artists, err := h.artistService.Search(middleware.DB(c), req.SearchTerm)
	if err != nil {
		respondError(c, err, "Failed to search artists")
		return
	}

	data := make([]gin.H, len(artists))
	for i := range artists {
		data[i] = gin.H{
			"id":                 artists[i].ID,
			"name":               artists[i].Name,
			"num_upcoming_shows": h.artistService.Shows(&artists[i]).UpcomingCount(),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       count,
		"data":        data,
		"search_term": req.SearchTerm,
	})
}

// GetArtist returns an artist with past and upcoming shows
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artist, err := h.artistService.GetArtistByID(middleware.DB(c), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve artist")
		return
	}

	shows := h.artistService.Shows(artist)
	c.JSON(http.StatusOK, gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"genres":               artist.Genres,
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"website_link":         artist.WebsiteLink,
		"facebook_link":        artist.FacebookLink,
		"seeking_venue":        artist.SeekingVenue,
		"seeking_description":  artist.SeekingDescription,
		"image_link":           artist.ImageLink,
		"past_shows":           artistShows(shows.Past),
		"upcoming_shows":       artistShows(shows.Upcoming),
		"past_shows_count":     shows.PastCount(),
		"upcoming_shows_count": shows.UpcomingCount(),
	})
}

// CreateArtist lists a new artist
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req artistRequest
	if !bind(c, &req) || !bindCheckbox(c, "seeking_venue", &req.SeekingVenue) {
		return
	}

	artist, err := h.artistService.CreateArtist(middleware.DB(c), req.fields())
	if err != nil {
		respondError(c, err, fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist":  artist,
	})
}

// EditArtistForm returns the artist's current editable fields
func (h *ArtistHandler) EditArtistForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artist, err := h.artistService.GetArtistByID(middleware.DB(c), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve artist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   artist.ID,
		"form": services.ArtistFieldsOf(artist),
	})
}

// UpdateArtist replaces the artist's editable fields
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req artistRequest
	if !bind(c, &req) || !bindCheckbox(c, "seeking_venue", &req.SeekingVenue) {
		return
	}

	artist, err := h.artistService.UpdateArtist(middleware.DB(c), id, req.fields())
	if err != nil {
		respondError(c, err, fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
		"artist":  artist,
	})
}

func artistShows(shows []models.Show) []gin.H {
	out := make([]gin.H, len(shows))
	for i, show := range shows {
		row := gin.H{
			"venue_id":   show.VenueID,
			"start_time": show.StartTime(),
		}
		if show.Venue != nil {
			row["venue_name"] = show.Venue.Name
			row["venue_image_link"] = show.Venue.ImageLink
		}
		out[i] = row
	}
	return out
}
