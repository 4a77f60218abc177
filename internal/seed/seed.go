// Package seed loads a YAML catalog fixture through the catalog services.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fyyur/backend/internal/services"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Venues  []VenueFixture  `yaml:"venues"`
	Artists []ArtistFixture `yaml:"artists"`
	Shows   []ShowFixture   `yaml:"shows"`
}

type VenueFixture struct {
	Key                string   `yaml:"key"`
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	Genres             []string `yaml:"genres"`
	FacebookLink       string   `yaml:"facebook_link"`
	WebsiteLink        string   `yaml:"website_link"`
	SeekingTalent      *bool    `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type ArtistFixture struct {
	Key                string   `yaml:"key"`
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Genres             []string `yaml:"genres"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	WebsiteLink        string   `yaml:"website_link"`
	SeekingVenue       *bool    `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
}

// ShowFixture references its venue and artist by fixture key. A missing
// start_time means the moment the show is loaded.
type ShowFixture struct {
	Venue     string    `yaml:"venue"`
	Artist    string    `yaml:"artist"`
	StartTime time.Time `yaml:"start_time"`
}

func (f VenueFixture) fields() services.VenueFields {
	return services.VenueFields{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func (f ArtistFixture) fields() services.ArtistFields {
	return services.ArtistFields{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// Parse decodes and checks a catalog document.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseFile parses the catalog at path.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the built-in sample catalog.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Validate checks that fixture keys are unique and that every show points
// at a venue and an artist defined in the same document.
func (c *Catalog) Validate() error {
	venues := make(map[string]bool, len(c.Venues))
	for i, v := range c.Venues {
		if v.Key == "" {
			return fmt.Errorf("venue %d: key is required", i)
		}
		if venues[v.Key] {
			return fmt.Errorf("venue %q: duplicate key", v.Key)
		}
		venues[v.Key] = true
	}

	artists := make(map[string]bool, len(c.Artists))
	for i, a := range c.Artists {
		if a.Key == "" {
			return fmt.Errorf("artist %d: key is required", i)
		}
		if artists[a.Key] {
			return fmt.Errorf("artist %q: duplicate key", a.Key)
		}
		artists[a.Key] = true
	}

	for i, s := range c.Shows {
		if !venues[s.Venue] {
			return fmt.Errorf("show %d: unknown venue %q", i, s.Venue)
		}
		if !artists[s.Artist] {
			return fmt.Errorf("show %d: unknown artist %q", i, s.Artist)
		}
	}
	return nil
}
