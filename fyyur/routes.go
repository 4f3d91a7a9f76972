package fyyur

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every booking page and form endpoint onto the router
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.siteHandler.home())

	r.Get("/venues", handlers.venueHandler.listVenues())
	r.Post("/venues/search", handlers.venueHandler.searchVenues())
	r.Get("/venues/create", handlers.venueHandler.createVenueForm())
	r.Post("/venues/create", handlers.venueHandler.createVenueSubmission())
	r.Get("/venues/{venueID}", handlers.venueHandler.showVenue())
	r.Get("/venues/{venueID}/edit", handlers.venueHandler.editVenueForm())
	r.Post("/venues/{venueID}/edit", handlers.venueHandler.editVenueSubmission())
	r.Delete("/venues/{venueID}", handlers.venueHandler.deleteVenue())

	r.Get("/artists", handlers.artistHandler.listArtists())
	r.Post("/artists/search", handlers.artistHandler.searchArtists())
	r.Get("/artists/create", handlers.artistHandler.createArtistForm())
	r.Post("/artists/create", handlers.artistHandler.createArtistSubmission())
	r.Get("/artists/{artistID}", handlers.artistHandler.showArtist())
	r.Get("/artists/{artistID}/edit", handlers.artistHandler.editArtistForm())
	r.Post("/artists/{artistID}/edit", handlers.artistHandler.editArtistSubmission())

	r.Get("/shows", handlers.showHandler.listShows())
	r.Get("/shows/create", handlers.showHandler.createShowForm())
	r.Post("/shows/create", handlers.showHandler.createShowSubmission())
}
