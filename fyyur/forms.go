package fyyur

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

// The forms hold raw submitted values so a failed submission can re-render
// with what the user typed. Apply/Model validate and build the entity.

// parseGenres accepts genres both as repeated form values and as a single
// comma-separated value.
func parseGenres(values []string) []string {
	var genres []string
	for _, value := range values {
		for _, genre := range strings.Split(value, ",") {
			genre = strings.TrimSpace(genre)
			if genre != "" {
				genres = append(genres, genre)
			}
		}
	}
	return genres
}

type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
}

func parseVenueForm(r *http.Request) VenueForm {
	return VenueForm{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Address:            r.PostFormValue("address"),
		Phone:              r.PostFormValue("phone"),
		Genres:             parseGenres(r.PostForm["genres"]),
		FacebookLink:       r.PostFormValue("facebook_link"),
		ImageLink:          r.PostFormValue("image_link"),
		WebsiteLink:        r.PostFormValue("website_link"),
		SeekingTalent:      r.PostFormValue("seeking_talent") != "",
		SeekingDescription: r.PostFormValue("seeking_description"),
	}
}

func newVenueForm(venue *models.Venue) VenueForm {
	form := VenueForm{
		Name:          venue.Name,
		City:          venue.City,
		State:         venue.State,
		Address:       venue.Address,
		Phone:         venue.Phone,
		Genres:        venue.GenreList(),
		FacebookLink:  venue.FacebookLink,
		ImageLink:     venue.ImageLink,
		WebsiteLink:   venue.WebsiteLink,
		SeekingTalent: venue.SeekingTalent,
	}
	if venue.SeekingDescription != nil {
		form.SeekingDescription = *venue.SeekingDescription
	}
	return form
}

// GenresValue re-joins genres for the form input value.
func (f VenueForm) GenresValue() string {
	return strings.Join(f.Genres, ",")
}

// Apply validates the submitted values and copies them onto venue.
func (f VenueForm) Apply(venue *models.Venue) error {
	if err := requireFields(map[string]string{
		"name":    f.Name,
		"city":    f.City,
		"state":   f.State,
		"address": f.Address,
		"phone":   f.Phone,
	}); err != nil {
		return err
	}

	venue.Name = f.Name
	venue.City = f.City
	venue.State = f.State
	venue.Address = f.Address
	venue.Phone = f.Phone
	venue.Genres = models.JoinGenres(f.Genres)
	venue.FacebookLink = f.FacebookLink
	venue.ImageLink = f.ImageLink
	venue.WebsiteLink = f.WebsiteLink
	venue.SeekingTalent = f.SeekingTalent
	venue.SeekingDescription = optional(f.SeekingDescription)
	return nil
}

type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
}

func parseArtistForm(r *http.Request) ArtistForm {
	return ArtistForm{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Phone:              r.PostFormValue("phone"),
		Genres:             parseGenres(r.PostForm["genres"]),
		FacebookLink:       r.PostFormValue("facebook_link"),
		ImageLink:          r.PostFormValue("image_link"),
		WebsiteLink:        r.PostFormValue("website_link"),
		SeekingVenue:       r.PostFormValue("seeking_venue") != "",
		SeekingDescription: r.PostFormValue("seeking_description"),
	}
}

func newArtistForm(artist *models.Artist) ArtistForm {
	form := ArtistForm{
		Name:         artist.Name,
		City:         artist.City,
		State:        artist.State,
		Phone:        artist.Phone,
		Genres:       artist.GenreList(),
		FacebookLink: artist.FacebookLink,
		ImageLink:    artist.ImageLink,
		WebsiteLink:  artist.WebsiteLink,
		SeekingVenue: artist.SeekingVenue,
	}
	if artist.SeekingDescription != nil {
		form.SeekingDescription = *artist.SeekingDescription
	}
	return form
}

// GenresValue re-joins genres for the form input value.
func (f ArtistForm) GenresValue() string {
	return strings.Join(f.Genres, ",")
}

// Apply validates the submitted values and copies them onto artist.
func (f ArtistForm) Apply(artist *models.Artist) error {
	if err := requireFields(map[string]string{
		"name":  f.Name,
		"city":  f.City,
		"state": f.State,
		"phone": f.Phone,
	}); err != nil {
		return err
	}

	artist.Name = f.Name
	artist.City = f.City
	artist.State = f.State
	artist.Phone = f.Phone
	artist.Genres = models.JoinGenres(f.Genres)
	artist.FacebookLink = f.FacebookLink
	artist.ImageLink = f.ImageLink
	artist.WebsiteLink = f.WebsiteLink
	artist.SeekingVenue = f.SeekingVenue
	artist.SeekingDescription = optional(f.SeekingDescription)
	return nil
}

type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func parseShowForm(r *http.Request) ShowForm {
	return ShowForm{
		ArtistID:  r.PostFormValue("artist_id"),
		VenueID:   r.PostFormValue("venue_id"),
		StartTime: r.PostFormValue("start_time"),
	}
}

// startTimeLayouts are the accepted submission formats, the HTML
// datetime-local format first.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Model validates the submitted values and builds the show.
func (f ShowForm) Model() (models.Show, error) {
	if err := requireFields(map[string]string{
		"artist_id":  f.ArtistID,
		"venue_id":   f.VenueID,
		"start_time": f.StartTime,
	}); err != nil {
		return models.Show{}, err
	}

	artistID, err := strconv.ParseUint(f.ArtistID, 10, 32)
	if err != nil {
		return models.Show{}, errs.NewInvalidFieldError("artist_id", "must be an integer")
	}
	venueID, err := strconv.ParseUint(f.VenueID, 10, 32)
	if err != nil {
		return models.Show{}, errs.NewInvalidFieldError("venue_id", "must be an integer")
	}

	startTime, err := parseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}

	return models.Show{
		ArtistID:  uint(artistID),
		VenueID:   uint(venueID),
		StartTime: startTime,
	}, nil
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewInvalidFieldError("start_time", "unrecognized timestamp format")
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return errs.NewMissingRequiredFieldError(name)
		}
	}
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
