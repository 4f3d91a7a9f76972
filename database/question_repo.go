package database

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"gorm.io/gorm"
)

type QuestionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db}
}

// FindPage returns one page of questions ordered by id plus the total row
// count. Pages are 1-based; out-of-range pages yield an empty slice, which
// the caller treats as not found.
func (r *QuestionRepo) FindPage(page, perPage int) ([]*models.Question, int64, error) {
	return r.page(r.db.Model(&models.Question{}), page, perPage)
}

// FindPageByCategory is FindPage scoped to one category.
func (r *QuestionRepo) FindPageByCategory(categoryID uint, page, perPage int) ([]*models.Question, int64, error) {
	return r.page(r.db.Model(&models.Question{}).Where("category_id = ?", categoryID), page, perPage)
}

func (r *QuestionRepo) page(query *gorm.DB, page, perPage int) ([]*models.Question, int64, error) {
	if page < 1 {
		page = 1
	}

	// Count and Find share the same conditions; a fresh session keeps the
	// chain reusable across both finishers.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []*models.Question
	err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// Search performs a case-insensitive substring match on question text.
// Zero matches is a valid result, never an error.
func (r *QuestionRepo) Search(term string, policy EmptySearchPolicy) ([]*models.Question, int64, error) {
	if term == "" && policy == EmptySearchMatchNone {
		return []*models.Question{}, 0, nil
	}

	var questions []*models.Question
	err := r.db.Where("lower(question) LIKE ?", likePattern(term)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, int64(len(questions)), nil
}

// FindCandidates returns the questions eligible for a quiz round: scoped to
// categoryID when non-zero and never one of the excluded ids.
func (r *QuestionRepo) FindCandidates(categoryID uint, exclude []uint) ([]*models.Question, error) {
	query := r.db.Order("id")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var questions []*models.Question
	err := query.Find(&questions).Error
	return questions, err
}

// FindByID returns a question by its id
func (r *QuestionRepo) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Add inserts a new question inside its own transaction
func (r *QuestionRepo) Add(question *models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

// Delete removes a question by id. Returns gorm.ErrRecordNotFound when the
// question does not exist, so a delete never reports success for a missing row.
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, id).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
}
