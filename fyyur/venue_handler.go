package fyyur

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type venueHandler struct {
	responder    Responder
	logger       zerolog.Logger
	venueRepo    *database.VenueRepo
	searchPolicy database.EmptySearchPolicy
}

func newVenueHandler(venueRepo *database.VenueRepo, searchPolicy database.EmptySearchPolicy) venueHandler {
	logger := log.With().Str("handlerName", "venueHandler").Logger()

	return venueHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		venueRepo:    venueRepo,
		searchPolicy: searchPolicy,
	}
}

// listVenues renders every venue grouped by distinct (city, state) area
func (h venueHandler) listVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.venueRepo.FindAll()
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find venues", "venues", err))
			return
		}

		h.responder.RenderPage(w, "venues.html", venuesView{
			Areas: groupVenuesByArea(venues, time.Now()),
		})
	}
}

// searchVenues matches the form's search_term as a case-insensitive substring
// of venue names; zero matches renders a count of 0, never an error page.
func (h venueHandler) searchVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.PostFormValue("search_term")

		venues, err := h.venueRepo.SearchByName(term, h.searchPolicy)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("search", "venues", err))
			return
		}

		h.responder.RenderPage(w, "search_venues.html", searchView{
			SearchTerm: term,
			Results:    venueSearchResults(venues, time.Now()),
		})
	}
}

// showVenue renders the venue page with its shows partitioned into past and
// upcoming.
func (h venueHandler) showVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "venue", err))
			return
		}

		h.responder.RenderPage(w, "show_venue.html", venueDetailView{
			Venue: newVenueDetail(venue, time.Now()),
		})
	}
}

func (h venueHandler) createVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderPage(w, "new_venue.html", venueFormView{})
	}
}

// createVenueSubmission validates the form, writes the venue in one
// transaction, and flashes the outcome on the re-rendered page.
func (h venueHandler) createVenueSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := parseVenueForm(r)

		var venue models.Venue
		if err := form.Apply(&venue); err != nil {
			h.responder.RenderStatus(w, http.StatusBadRequest, "new_venue.html", venueFormView{
				Flash: fmt.Sprintf("An error occurred. Venue %s could not be listed: %s.", form.Name, err),
				Form:  form,
			})
			return
		}

		if err := h.venueRepo.Add(&venue); err != nil {
			h.logger.Error().Err(err).Msg("error creating venue")
			h.responder.RenderPage(w, "home.html", homeView{
				Flash: fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
			})
			return
		}

		h.responder.RenderPage(w, "home.html", homeView{
			Flash: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		})
	}
}

func (h venueHandler) editVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "venue", err))
			return
		}

		h.responder.RenderPage(w, "edit_venue.html", venueFormView{
			Form:    newVenueForm(venue),
			VenueID: venue.ID,
		})
	}
}

// editVenueSubmission updates an existing venue and redirects back to its
// page; failures re-render the form with a flashed message.
func (h venueHandler) editVenueSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "venue", err))
			return
		}

		form := parseVenueForm(r)
		if err := form.Apply(venue); err != nil {
			h.responder.RenderStatus(w, http.StatusBadRequest, "edit_venue.html", venueFormView{
				Flash:   fmt.Sprintf("An error occurred. Venue %s could not be edited: %s.", form.Name, err),
				Form:    form,
				VenueID: venueID,
			})
			return
		}

		if err := h.venueRepo.Update(venue); err != nil {
			h.logger.Error().Err(err).Msg("error updating venue")
			h.responder.RenderStatus(w, http.StatusUnprocessableEntity, "edit_venue.html", venueFormView{
				Flash:   fmt.Sprintf("An error occurred. Venue %s could not be edited.", form.Name),
				Form:    form,
				VenueID: venueID,
			})
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/venues/%d", venueID), http.StatusSeeOther)
	}
}

// deleteVenue removes a venue and its shows; the delete button drives this
// through fetch(), so the response is JSON.
func (h venueHandler) deleteVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID")
		if err != nil {
			h.responder.WriteJSONError(w, err)
			return
		}

		if err := h.venueRepo.Delete(venueID); err != nil {
			h.responder.WriteJSONError(w, wrapDatabaseError("delete", "venue", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true, "deleted": venueID})
	}
}
