package models

import (
	"time"

	"github.com/lib/pq"
)

type Artist struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Phone              string         `gorm:"size:120" json:"phone"`
	Genres             pq.StringArray `gorm:"type:text[];not null" json:"genres"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string         `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool           `gorm:"not null" json:"seeking_venue"`
	SeekingDescription string         `gorm:"type:text" json:"seeking_description"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	// Relations. No cascade: an artist with shows cannot be removed.
	Shows []Show `gorm:"foreignKey:ArtistID" json:"-"`
}

// UpcomingShows returns the artist's shows starting after now.
func (a *Artist) UpcomingShows(now time.Time) []Show {
	return UpcomingShows(a.Shows, now)
}

// PastShows returns the artist's shows that started before now.
func (a *Artist) PastShows(now time.Time) []Show {
	return PastShows(a.Shows, now)
}
