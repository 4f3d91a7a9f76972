package database

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db}
}

// FindAllWithRelations returns all shows with artist and venue materialized,
// ordered by start time.
func (r *ShowRepo) FindAllWithRelations() ([]*models.Show, error) {
	var shows []*models.Show
	err := r.db.Preload("Artist").Preload("Venue").Order("start_time").Find(&shows).Error
	return shows, err
}

// Add inserts a new show after verifying both referenced rows exist, all in
// one transaction so a bad reference leaves nothing behind.
func (r *ShowRepo) Add(show *models.Show) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, show.ArtistID).Error; err != nil {
			return err
		}
		var venue models.Venue
		if err := tx.First(&venue, show.VenueID).Error; err != nil {
			return err
		}
		return tx.Create(show).Error
	})
}
