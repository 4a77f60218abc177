package models

import (
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Address            string         `gorm:"size:120" json:"address"`
	Phone              string         `gorm:"size:120" json:"phone"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	Genres             pq.StringArray `gorm:"type:text[];not null" json:"genres"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string         `gorm:"size:120" json:"website_link"`
	SeekingTalent      bool           `gorm:"not null" json:"seeking_talent"`
	SeekingDescription string         `gorm:"type:text" json:"seeking_description"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	// Relations
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

// UpcomingShows returns the venue's shows starting after now.
func (v *Venue) UpcomingShows(now time.Time) []Show {
	return UpcomingShows(v.Shows, now)
}

// PastShows returns the venue's shows that started before now.
func (v *Venue) PastShows(now time.Time) []Show {
	return PastShows(v.Shows, now)
}
