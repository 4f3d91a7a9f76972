package database

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db}
}

// FindAll returns all artists ordered by id
func (r *ArtistRepo) FindAll() ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.Order("id").Find(&artists).Error
	return artists, err
}

// FindByID returns an artist with its shows and each show's venue materialized.
func (r *ArtistRepo) FindByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.Preload("Shows.Venue").First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// SearchByName performs a case-insensitive substring match on artist names.
// Zero matches is a valid result, never an error.
func (r *ArtistRepo) SearchByName(term string, policy EmptySearchPolicy) ([]*models.Artist, error) {
	if term == "" && policy == EmptySearchMatchNone {
		return []*models.Artist{}, nil
	}

	var artists []*models.Artist
	err := r.db.Preload("Shows").
		Where("lower(name) LIKE ?", likePattern(term)).
		Order("id").
		Find(&artists).Error
	return artists, err
}

// Add inserts a new artist inside its own transaction
func (r *ArtistRepo) Add(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

// Update saves an existing artist inside its own transaction
func (r *ArtistRepo) Update(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(artist).Error
	})
}
