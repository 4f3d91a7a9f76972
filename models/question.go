package models

// Question is a single trivia question. CategoryID serializes as "category"
// because the API exchanges category ids, not embedded category objects.
type Question struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Question   string    `json:"question" db:"question" gorm:"type:text;not null"`
	Answer     string    `json:"answer" db:"answer" gorm:"type:text;not null"`
	Difficulty int       `json:"difficulty" db:"difficulty" gorm:"not null"`
	CategoryID uint      `json:"category" db:"category_id" gorm:"not null"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"`
}
