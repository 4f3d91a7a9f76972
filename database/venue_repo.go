package database

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db}
}

// FindAll returns all venues with their shows loaded, ordered by city/state
// so the listing can be grouped into areas without a second query.
func (r *VenueRepo) FindAll() ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.Preload("Shows").Order("city").Order("state").Order("id").Find(&venues).Error
	return venues, err
}

// FindByID returns a venue with its shows and each show's artist materialized.
func (r *VenueRepo) FindByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.Preload("Shows.Artist").First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// SearchByName performs a case-insensitive substring match on venue names.
// Zero matches is a valid result, never an error.
func (r *VenueRepo) SearchByName(term string, policy EmptySearchPolicy) ([]*models.Venue, error) {
	if term == "" && policy == EmptySearchMatchNone {
		return []*models.Venue{}, nil
	}

	var venues []*models.Venue
	err := r.db.Preload("Shows").
		Where("lower(name) LIKE ?", likePattern(term)).
		Order("id").
		Find(&venues).Error
	return venues, err
}

// Add inserts a new venue inside its own transaction
func (r *VenueRepo) Add(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

// Update saves an existing venue inside its own transaction
func (r *VenueRepo) Update(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(venue).Error
	})
}

// Delete removes a venue and its shows atomically. Returns
// gorm.ErrRecordNotFound when the venue does not exist.
func (r *VenueRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
}
