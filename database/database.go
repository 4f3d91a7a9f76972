package database

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type Database struct {
	venueRepo    *VenueRepo
	artistRepo   *ArtistRepo
	showRepo     *ShowRepo
	categoryRepo *CategoryRepo
	questionRepo *QuestionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		venueRepo:    NewVenueRepo(db),
		artistRepo:   NewArtistRepo(db),
		showRepo:     NewShowRepo(db),
		categoryRepo: NewCategoryRepo(db),
		questionRepo: NewQuestionRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) VenueRepo() *VenueRepo {
	return d.venueRepo
}

func (d Database) ArtistRepo() *ArtistRepo {
	return d.artistRepo
}

func (d Database) ShowRepo() *ShowRepo {
	return d.showRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) QuestionRepo() *QuestionRepo {
	return d.questionRepo
}

// MigrateBooking creates or updates the booking app tables.
func MigrateBooking(db *gorm.DB) error {
	return db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{})
}

// MigrateTrivia creates or updates the trivia app tables.
func MigrateTrivia(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Question{})
}
