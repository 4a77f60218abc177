package services

import (
	"time"

	"github.com/fyyur/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShowListing is one row of the show list, flattened across the show, its
// venue and its artist.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type ShowService struct {
	now Clock
}

func NewShowService(clock Clock) *ShowService {
	return &ShowService{now: clockOrDefault(clock)}
}

// ListShowsExpanded returns every show joined with its venue and artist
func (s *ShowService) ListShowsExpanded(db *gorm.DB) ([]ShowListing, error) {
	var shows []models.Show
	if err := db.Preload("Venue").Preload("Artist").Order("id").Find(&shows).Error; err != nil {
		return nil, storeErr("list shows", err)
	}

	listings := make([]ShowListing, 0, len(shows))
	for i := range shows {
		show := &shows[i]
		row := ShowListing{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime(),
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
		}
		listings = append(listings, row)
	}
	return listings, nil
}

// CreateShow books an artist at a venue. A zero start time means now.
func (s *ShowService) CreateShow(db *gorm.DB, artistID, venueID uint, start time.Time) (*models.Show, error) {
	if start.IsZero() {
		start = s.now()
	}

	var show *models.Show
	err := db.Transaction(func(tx *gorm.DB) error {
		artist, err := findArtist(tx, artistID)
		if err != nil {
			return err
		}
		venue, err := findVenue(tx, venueID)
		if err != nil {
			return err
		}
		sh := &models.Show{
			ArtistID:  artist.ID,
			VenueID:   venue.ID,
			StartDate: start,
		}
		if err := tx.Omit(clause.Associations).Create(sh).Error; err != nil {
			return storeErr("create show", err)
		}
		sh.Artist = artist
		sh.Venue = venue
		show = sh
		return nil
	})
	if err != nil {
		return nil, storeErr("create show", err)
	}
	return show, nil
}

// CountShows returns the number of stored shows
func (s *ShowService) CountShows(db *gorm.DB) (int64, error) {
	var n int64
	if err := db.Model(&models.Show{}).Count(&n).Error; err != nil {
		return 0, storeErr("count shows", err)
	}
	return n, nil
}
