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

type artistHandler struct {
	responder    Responder
	logger       zerolog.Logger
	artistRepo   *database.ArtistRepo
	searchPolicy database.EmptySearchPolicy
}

func newArtistHandler(artistRepo *database.ArtistRepo, searchPolicy database.EmptySearchPolicy) artistHandler {
	logger := log.With().Str("handlerName", "artistHandler").Logger()

	return artistHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		artistRepo:   artistRepo,
		searchPolicy: searchPolicy,
	}
}

func (h artistHandler) listArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistRepo.FindAll()
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find artists", "artists", err))
			return
		}

		rows := make([]ArtistRow, 0, len(artists))
		for _, artist := range artists {
			rows = append(rows, ArtistRow{ID: artist.ID, Name: artist.Name})
		}

		h.responder.RenderPage(w, "artists.html", artistsView{Artists: rows})
	}
}

func (h artistHandler) searchArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.PostFormValue("search_term")

		artists, err := h.artistRepo.SearchByName(term, h.searchPolicy)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("search", "artists", err))
			return
		}

		h.responder.RenderPage(w, "search_artists.html", searchView{
			SearchTerm: term,
			Results:    artistSearchResults(artists, time.Now()),
		})
	}
}

func (h artistHandler) showArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "artist", err))
			return
		}

		h.responder.RenderPage(w, "show_artist.html", artistDetailView{
			Artist: newArtistDetail(artist, time.Now()),
		})
	}
}

func (h artistHandler) createArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderPage(w, "new_artist.html", artistFormView{})
	}
}

func (h artistHandler) createArtistSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := parseArtistForm(r)

		var artist models.Artist
		if err := form.Apply(&artist); err != nil {
			h.responder.RenderStatus(w, http.StatusBadRequest, "new_artist.html", artistFormView{
				Flash: fmt.Sprintf("An error occurred. Artist %s could not be listed: %s.", form.Name, err),
				Form:  form,
			})
			return
		}

		if err := h.artistRepo.Add(&artist); err != nil {
			h.logger.Error().Err(err).Msg("error creating artist")
			h.responder.RenderPage(w, "home.html", homeView{
				Flash: fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name),
			})
			return
		}

		h.responder.RenderPage(w, "home.html", homeView{
			Flash: fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		})
	}
}

func (h artistHandler) editArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "artist", err))
			return
		}

		h.responder.RenderPage(w, "edit_artist.html", artistFormView{
			Form:     newArtistForm(artist),
			ArtistID: artist.ID,
		})
	}
}

func (h artistHandler) editArtistSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID")
		if err != nil {
			h.responder.RenderError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find", "artist", err))
			return
		}

		form := parseArtistForm(r)
		if err := form.Apply(artist); err != nil {
			h.responder.RenderStatus(w, http.StatusBadRequest, "edit_artist.html", artistFormView{
				Flash:    fmt.Sprintf("An error occurred. Artist %s could not be edited: %s.", form.Name, err),
				Form:     form,
				ArtistID: artistID,
			})
			return
		}

		if err := h.artistRepo.Update(artist); err != nil {
			h.logger.Error().Err(err).Msg("error updating artist")
			h.responder.RenderStatus(w, http.StatusUnprocessableEntity, "edit_artist.html", artistFormView{
				Flash:    fmt.Sprintf("An error occurred. Artist %s could not be edited.", form.Name),
				Form:     form,
				ArtistID: artistID,
			})
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/artists/%d", artistID), http.StatusSeeOther)
	}
}
