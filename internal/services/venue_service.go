package services

import (
	"errors"

	"github.com/fyyur/backend/internal/models"
	"gorm.io/gorm"
)

// VenueService implements the venue half of the booking catalog. Every
// method takes the caller's request-scoped database handle.
type VenueService struct {
	now Clock
}

func NewVenueService(clock Clock) *VenueService {
	return &VenueService{now: clockOrDefault(clock)}
}

// Shows partitions the venue's loaded shows around the current instant.
func (s *VenueService) Shows(v *models.Venue) models.ShowPartition {
	return models.PartitionShows(v.Shows, s.now())
}

// ListGroupedByArea returns every venue grouped by (city, state).
func (s *VenueService) ListGroupedByArea(db *gorm.DB) ([]Area, error) {
	var venues []models.Venue
	if err := db.Preload("Shows").Order("id").Find(&venues).Error; err != nil {
		return nil, storeErr("list venues", err)
	}
	return GroupByArea(venues), nil
}

// Search returns venues whose name contains term, ignoring case.
func (s *VenueService) Search(db *gorm.DB, term string) (int, []models.Venue, error) {
	var venues []models.Venue
	err := db.Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id").
		Find(&venues).Error
	if err != nil {
		return 0, nil, storeErr("search venues", err)
	}
	return len(venues), venues, nil
}

// GetVenueByID retrieves a venue with its shows and their artists
func (s *VenueService) GetVenueByID(db *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := db.Preload("Shows.Artist").First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: id}
		}
		return nil, storeErr("get venue", err)
	}
	return &venue, nil
}

// CreateVenue validates in and inserts a new venue
func (s *VenueService) CreateVenue(db *gorm.DB, in VenueFields) (*models.Venue, error) {
	in = in.sanitized()
	if err := checkFields(in); err != nil {
		return nil, err
	}

	venue := &models.Venue{}
	in.applyTo(venue)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
	if err != nil {
		return nil, storeErr("create venue", err)
	}
	return venue, nil
}

// UpdateVenue replaces every editable field of an existing venue
func (s *VenueService) UpdateVenue(db *gorm.DB, id uint, in VenueFields) (*models.Venue, error) {
	in = in.sanitized()
	if err := checkFields(in); err != nil {
		return nil, err
	}

	var venue *models.Venue
	err := db.Transaction(func(tx *gorm.DB) error {
		v, err := findVenue(tx, id)
		if err != nil {
			return err
		}
		in.applyTo(v)
		if err := tx.Save(v).Error; err != nil {
			return storeErr("update venue", err)
		}
		venue = v
		return nil
	})
	if err != nil {
		return nil, storeErr("update venue", err)
	}
	return venue, nil
}

// DeleteVenue deletes a venue together with all of its shows and reports
// how many shows were removed.
func (s *VenueService) DeleteVenue(db *gorm.DB, id uint) (int64, error) {
	var removed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		venue, err := findVenue(tx, id)
		if err != nil {
			return err
		}
		// Explicit so the cascade holds even where the FK predates ON DELETE CASCADE
		result := tx.Where("venue_id = ?", venue.ID).Delete(&models.Show{})
		if result.Error != nil {
			return storeErr("delete venue shows", result.Error)
		}
		removed = result.RowsAffected
		if err := tx.Delete(venue).Error; err != nil {
			return storeErr("delete venue", err)
		}
		return nil
	})
	if err != nil {
		return 0, storeErr("delete venue", err)
	}
	return removed, nil
}

// CountVenues returns the number of stored venues
func (s *VenueService) CountVenues(db *gorm.DB) (int64, error) {
	var n int64
	if err := db.Model(&models.Venue{}).Count(&n).Error; err != nil {
		return 0, storeErr("count venues", err)
	}
	return n, nil
}

func findVenue(tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: id}
		}
		return nil, storeErr("get venue", err)
	}
	return &venue, nil
}
