package models

import "time"

// Show represents a single booking of an artist at a venue
type Show struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	StartTime time.Time `json:"start_time" db:"start_time" gorm:"not null"`
	ArtistID  uint      `json:"artist_id" db:"artist_id" gorm:"not null"`
	VenueID   uint      `json:"venue_id" db:"venue_id" gorm:"not null"`
	Artist    *Artist   `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Venue     *Venue    `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

// IsPast reports whether the show has already happened. A show starting
// exactly at now counts as past.
func (s Show) IsPast(now time.Time) bool {
	return !s.StartTime.After(now)
}
