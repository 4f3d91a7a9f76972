package database

import (
	"errors"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAllOrdered returns all categories ordered by id ascending
func (r *CategoryRepo) FindAllOrdered() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

// Exists reports whether a category with the given id is present
func (r *CategoryRepo) Exists(id uint) (bool, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
