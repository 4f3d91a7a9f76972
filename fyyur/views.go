package fyyur

import (
	"time"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

// showTimeLayout is the display format for show start times.
const showTimeLayout = "01/02/2006, 15:04"

// ShowView is the fully-materialized projection of a show used by the
// templates; no lazy traversal happens past this point.
type ShowView struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	StartTime       string
}

// partitionShows splits shows into past and upcoming relative to now. A show
// starting exactly at now is past.
func partitionShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	for _, show := range shows {
		if show.IsPast(now) {
			past = append(past, show)
		} else {
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}

func countUpcoming(shows []models.Show, now time.Time) int {
	_, upcoming := partitionShows(shows, now)
	return len(upcoming)
}

func showViews(shows []models.Show) []ShowView {
	views := make([]ShowView, 0, len(shows))
	for _, show := range shows {
		view := ShowView{
			ArtistID:  show.ArtistID,
			VenueID:   show.VenueID,
			StartTime: show.StartTime.Format(showTimeLayout),
		}
		if show.Artist != nil {
			view.ArtistName = show.Artist.Name
			view.ArtistImageLink = show.Artist.ImageLink
		}
		if show.Venue != nil {
			view.VenueName = show.Venue.Name
			view.VenueImageLink = show.Venue.ImageLink
		}
		views = append(views, view)
	}
	return views
}

// VenueArea groups the venues of one distinct (city, state) pair.
type VenueArea struct {
	City   string
	State  string
	Venues []VenueRow
}

type VenueRow struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

// groupVenuesByArea builds the areas listing from venues already ordered by
// city and state.
func groupVenuesByArea(venues []*models.Venue, now time.Time) []VenueArea {
	var areas []VenueArea
	indexByArea := make(map[string]int)

	for _, venue := range venues {
		key := venue.City + "|" + venue.State
		idx, ok := indexByArea[key]
		if !ok {
			areas = append(areas, VenueArea{City: venue.City, State: venue.State})
			idx = len(areas) - 1
			indexByArea[key] = idx
		}
		areas[idx].Venues = append(areas[idx].Venues, VenueRow{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: countUpcoming(venue.Shows, now),
		})
	}
	return areas
}

// SearchResults is the minimal projection returned by the search endpoints.
type SearchResults struct {
	Count int
	Data  []SearchRow
}

type SearchRow struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

func venueSearchResults(venues []*models.Venue, now time.Time) SearchResults {
	results := SearchResults{Count: len(venues), Data: make([]SearchRow, 0, len(venues))}
	for _, venue := range venues {
		results.Data = append(results.Data, SearchRow{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: countUpcoming(venue.Shows, now),
		})
	}
	return results
}

func artistSearchResults(artists []*models.Artist, now time.Time) SearchResults {
	results := SearchResults{Count: len(artists), Data: make([]SearchRow, 0, len(artists))}
	for _, artist := range artists {
		results.Data = append(results.Data, SearchRow{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: countUpcoming(artist.Shows, now),
		})
	}
	return results
}

// VenueDetail is the venue page projection with shows already partitioned.
type VenueDetail struct {
	models.Venue
	GenreNames         []string
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

func newVenueDetail(venue *models.Venue, now time.Time) VenueDetail {
	past, upcoming := partitionShows(venue.Shows, now)
	return VenueDetail{
		Venue:              *venue,
		GenreNames:         venue.GenreList(),
		PastShows:          showViews(past),
		UpcomingShows:      showViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// ArtistDetail is the artist page projection with shows already partitioned.
type ArtistDetail struct {
	models.Artist
	GenreNames         []string
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

func newArtistDetail(artist *models.Artist, now time.Time) ArtistDetail {
	past, upcoming := partitionShows(artist.Shows, now)
	return ArtistDetail{
		Artist:             *artist,
		GenreNames:         artist.GenreList(),
		PastShows:          showViews(past),
		UpcomingShows:      showViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

type ArtistRow struct {
	ID   uint
	Name string
}

// Template data types. Every page takes an explicit struct; Flash carries the
// one-shot status message rendered at the top of the page.

type homeView struct {
	Flash string
}

type venuesView struct {
	Flash string
	Areas []VenueArea
}

type artistsView struct {
	Flash   string
	Artists []ArtistRow
}

type showsView struct {
	Flash string
	Shows []ShowView
}

type searchView struct {
	SearchTerm string
	Results    SearchResults
}

type venueDetailView struct {
	Flash string
	Venue VenueDetail
}

type artistDetailView struct {
	Flash  string
	Artist ArtistDetail
}

type venueFormView struct {
	Flash   string
	Form    VenueForm
	VenueID uint
}

type artistFormView struct {
	Flash    string
	Form     ArtistForm
	ArtistID uint
}

type showFormView struct {
	Flash string
	Form  ShowForm
}
