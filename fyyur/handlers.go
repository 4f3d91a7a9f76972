package fyyur

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler   siteHandler
	venueHandler  venueHandler
	artistHandler artistHandler
	showHandler   showHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, searchPolicy database.EmptySearchPolicy) *routeHandlers {
	return &routeHandlers{
		siteHandler:   newSiteHandler(),
		venueHandler:  newVenueHandler(database.VenueRepo(), searchPolicy),
		artistHandler: newArtistHandler(database.ArtistRepo(), searchPolicy),
		showHandler:   newShowHandler(database.ShowRepo()),
	}
}

// wrapDatabaseError wraps a persistence error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}

// pathID reads an unsigned integer URL parameter; a malformed id is NotFound
// because the addressed resource cannot exist.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewNotFoundError("invalid " + name)
	}
	return uint(id), nil
}

type siteHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newSiteHandler() siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()
	return siteHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderPage(w, "home.html", homeView{})
	}
}

func (h siteHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderStatus(w, http.StatusNotFound, "404.html", nil)
	}
}

func (h siteHandler) serverError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderStatus(w, http.StatusInternalServerError, "500.html", nil)
	}
}
