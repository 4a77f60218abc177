package services

import (
	"github.com/fyyur/backend/internal/models"
	"github.com/fyyur/backend/pkg/validation"
	"github.com/lib/pq"
)

// VenueFields is the full set of editable venue attributes. Create and
// update both assign every field; SeekingTalent nil means the default (true).
type VenueFields struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	Genres             []string `json:"genres" validate:"required,min=1"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url"`
	SeekingTalent      *bool    `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistFields is the full set of editable artist attributes.
// SeekingVenue nil means the default (true).
type ArtistFields struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url"`
	SeekingVenue       *bool    `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueFieldsOf returns the current editable state of v.
func VenueFieldsOf(v *models.Venue) VenueFields {
	seeking := v.SeekingTalent
	return VenueFields{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string{}, v.Genres...),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      &seeking,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistFieldsOf returns the current editable state of a.
func ArtistFieldsOf(a *models.Artist) ArtistFields {
	seeking := a.SeekingVenue
	return ArtistFields{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string{}, a.Genres...),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       &seeking,
		SeekingDescription: a.SeekingDescription,
	}
}

func (f VenueFields) sanitized() VenueFields {
	f.Name = validation.SanitizeString(f.Name)
	f.City = validation.SanitizeString(f.City)
	f.State = validation.SanitizeString(f.State)
	f.Address = validation.SanitizeString(f.Address)
	f.Phone = validation.SanitizeString(f.Phone)
	f.ImageLink = validation.SanitizeString(f.ImageLink)
	f.Genres = validation.SanitizeList(f.Genres)
	f.FacebookLink = validation.SanitizeString(f.FacebookLink)
	f.WebsiteLink = validation.SanitizeString(f.WebsiteLink)
	f.SeekingDescription = validation.SanitizeString(f.SeekingDescription)
	return f
}

func (f ArtistFields) sanitized() ArtistFields {
	f.Name = validation.SanitizeString(f.Name)
	f.City = validation.SanitizeString(f.City)
	f.State = validation.SanitizeString(f.State)
	f.Phone = validation.SanitizeString(f.Phone)
	f.Genres = validation.SanitizeList(f.Genres)
	f.ImageLink = validation.SanitizeString(f.ImageLink)
	f.FacebookLink = validation.SanitizeString(f.FacebookLink)
	f.WebsiteLink = validation.SanitizeString(f.WebsiteLink)
	f.SeekingDescription = validation.SanitizeString(f.SeekingDescription)
	return f
}

// applyTo overwrites every editable column of v.
func (f VenueFields) applyTo(v *models.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.Genres = pq.StringArray(append([]string{}, f.Genres...))
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.SeekingTalent = boolOrDefault(f.SeekingTalent, true)
	v.SeekingDescription = f.SeekingDescription
}

// applyTo overwrites every editable column of a.
func (f ArtistFields) applyTo(a *models.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = pq.StringArray(append([]string{}, f.Genres...))
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.WebsiteLink = f.WebsiteLink
	a.SeekingVenue = boolOrDefault(f.SeekingVenue, true)
	a.SeekingDescription = f.SeekingDescription
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// checkFields reports the failing fields of an already sanitized field set.
func checkFields(f any) error {
	fields, err := validation.Struct(f)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
