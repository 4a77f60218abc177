package seed

import (
	"fmt"

	"github.com/fyyur/backend/internal/services"
	"gorm.io/gorm"
)

// Result counts the records a load created.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

type Loader struct {
	venueService  *services.VenueService
	artistService *services.ArtistService
	showService   *services.ShowService
}

func NewLoader(clock services.Clock) *Loader {
	return &Loader{
		venueService:  services.NewVenueService(clock),
		artistService: services.NewArtistService(clock),
		showService:   services.NewShowService(clock),
	}
}

// Load creates every fixture of c in one transaction. Records go through
// the catalog services, so invalid fixtures abort the whole load.
func (l *Loader) Load(db *gorm.DB, c *Catalog) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		venueIDs := make(map[string]uint, len(c.Venues))
		for _, f := range c.Venues {
			venue, err := l.venueService.CreateVenue(tx, f.fields())
			if err != nil {
				return fmt.Errorf("venue %q: %w", f.Key, err)
			}
			venueIDs[f.Key] = venue.ID
			res.Venues++
		}

		artistIDs := make(map[string]uint, len(c.Artists))
		for _, f := range c.Artists {
			artist, err := l.artistService.CreateArtist(tx, f.fields())
			if err != nil {
				return fmt.Errorf("artist %q: %w", f.Key, err)
			}
			artistIDs[f.Key] = artist.ID
			res.Artists++
		}

		for i, f := range c.Shows {
			if _, err := l.showService.CreateShow(tx, artistIDs[f.Artist], venueIDs[f.Venue], f.StartTime); err != nil {
				return fmt.Errorf("show %d: %w", i, err)
			}
			res.Shows++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
