package models

// Artist represents a performer that can be booked for shows
type Artist struct {
	ID                 uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name               string  `json:"name" db:"name" gorm:"type:text;not null"`
	City               string  `json:"city" db:"city" gorm:"type:text;not null"`
	State              string  `json:"state" db:"state" gorm:"type:text;not null"`
	Phone              string  `json:"phone" db:"phone" gorm:"type:text;not null"`
	Genres             string  `json:"genres" db:"genres" gorm:"type:text;not null"`
	FacebookLink       string  `json:"facebook_link" db:"facebook_link" gorm:"type:text;not null"`
	ImageLink          string  `json:"image_link" db:"image_link" gorm:"type:text;not null"`
	WebsiteLink        string  `json:"website_link" db:"website_link" gorm:"type:text;not null"`
	SeekingVenue       bool    `json:"seeking_venue" db:"seeking_venue" gorm:"not null;default:false"`
	SeekingDescription *string `json:"seeking_description,omitempty" db:"seeking_description" gorm:"type:text"`
	Shows              []Show  `json:"shows,omitempty" gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE"`
}

func (a Artist) GenreList() []string {
	return SplitGenres(a.Genres)
}
