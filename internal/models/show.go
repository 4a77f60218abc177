package models

import "time"

// StartTimeLayout is how show start times are rendered in listings.
const StartTimeLayout = "2006-01-02 15:04:05"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartDate time.Time `gorm:"not null;index" json:"start_date"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations. The shows.venue_id cascade is declared on Venue.Shows.
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}

// StartTime formats the start date for display.
func (s *Show) StartTime() string {
	return s.StartDate.Format(StartTimeLayout)
}
