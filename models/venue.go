package models

import "strings"

// Venue represents a performance space that hosts shows
type Venue struct {
	ID                 uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name               string  `json:"name" db:"name" gorm:"type:text;not null"`
	City               string  `json:"city" db:"city" gorm:"type:text;not null"`
	State              string  `json:"state" db:"state" gorm:"type:text;not null"`
	Address            string  `json:"address" db:"address" gorm:"type:text;not null"`
	Phone              string  `json:"phone" db:"phone" gorm:"type:text;not null"`
	Genres             string  `json:"genres" db:"genres" gorm:"type:text;not null"`
	FacebookLink       string  `json:"facebook_link" db:"facebook_link" gorm:"type:text;not null"`
	ImageLink          string  `json:"image_link" db:"image_link" gorm:"type:text;not null"`
	WebsiteLink        string  `json:"website_link" db:"website_link" gorm:"type:text;not null"`
	SeekingTalent      bool    `json:"seeking_talent" db:"seeking_talent" gorm:"not null;default:false"`
	SeekingDescription *string `json:"seeking_description,omitempty" db:"seeking_description" gorm:"type:text"`
	Shows              []Show  `json:"shows,omitempty" gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE"`
}

// GenreList splits the stored genre string back into its submitted values.
func (v Venue) GenreList() []string {
	return SplitGenres(v.Genres)
}

// JoinGenres stores the multi-select form values as a single text column.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func SplitGenres(genres string) []string {
	if genres == "" {
		return nil
	}
	return strings.Split(genres, ",")
}
