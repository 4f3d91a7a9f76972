package models

// Category is a trivia question grouping, e.g. "Science" or "History"
type Category struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Type string `json:"type" db:"type" gorm:"type:text;not null"`
}
