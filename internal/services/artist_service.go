package services

import (
	"errors"

	"github.com/fyyur/backend/internal/models"
	"gorm.io/gorm"
)

// ArtistService implements the artist half of the booking catalog.
// Artists cannot be deleted.
type ArtistService struct {
	now Clock
}

func NewArtistService(clock Clock) *ArtistService {
	return &ArtistService{now: clockOrDefault(clock)}
}

// Shows partitions the artist's loaded shows around the current instant.
func (s *ArtistService) Shows(a *models.Artist) models.ShowPartition {
	return models.PartitionShows(a.Shows, s.now())
}

// ListArtists returns all artists in id order
func (s *ArtistService) ListArtists(db *gorm.DB) ([]models.Artist, error) {
	var artists []models.Artist
	if err := db.Order("id").Find(&artists).Error; err != nil {
		return nil, storeErr("list artists", err)
	}
	return artists, nil
}

// Search returns artists whose name contains term, ignoring case.
func (s *ArtistService) Search(db *gorm.DB, term string) (int, []models.Artist, error) {
	var artists []models.Artist
	err := db.Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id").
		Find(&artists).Error
	if err != nil {
		return 0, nil, storeErr("search artists", err)
	}
	return len(artists), artists, nil
}

// GetArtistByID retrieves an artist with shows and their venues
func (s *ArtistService) GetArtistByID(db *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := db.Preload("Shows.Venue").First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "artist", ID: id}
		}
		return nil, storeErr("get artist", err)
	}
	return &artist, nil
}

// CreateArtist validates in and inserts a new artist
func (s *ArtistService) CreateArtist(db *gorm.DB, in ArtistFields) (*models.Artist, error) {
	in = in.sanitized()
	if err := checkFields(in); err != nil {
		return nil, err
	}

	artist := &models.Artist{}
	in.applyTo(artist)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	if err != nil {
		return nil, storeErr("create artist", err)
	}
	return artist, nil
}

// UpdateArtist replaces every editable field of an existing artist
func (s *ArtistService) UpdateArtist(db *gorm.DB, id uint, in ArtistFields) (*models.Artist, error) {
	in = in.sanitized()
	if err := checkFields(in); err != nil {
		return nil, err
	}

	var artist *models.Artist
	err := db.Transaction(func(tx *gorm.DB) error {
		a, err := findArtist(tx, id)
		if err != nil {
			return err
		}
		in.applyTo(a)
		if err := tx.Save(a).Error; err != nil {
			return storeErr("update artist", err)
		}
		artist = a
		return nil
	})
	if err != nil {
		return nil, storeErr("update artist", err)
	}
	return artist, nil
}

// CountArtists returns the number of stored artists
func (s *ArtistService) CountArtists(db *gorm.DB) (int64, error) {
	var n int64
	if err := db.Model(&models.Artist{}).Count(&n).Error; err != nil {
		return 0, storeErr("count artists", err)
	}
	return n, nil
}

func findArtist(tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "artist", ID: id}
		}
		return nil, storeErr("get artist", err)
	}
	return &artist, nil
}
