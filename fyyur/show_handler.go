package fyyur

import (
	"fmt"
	"net/http"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type showHandler struct {
	responder Responder
	logger    zerolog.Logger
	showRepo  *database.ShowRepo
}

func newShowHandler(showRepo *database.ShowRepo) showHandler {
	logger := log.With().Str("handlerName", "showHandler").Logger()

	return showHandler{
		responder: NewResponder(logger),
		logger:    logger,
		showRepo:  showRepo,
	}
}

// listShows renders every show with artist and venue already joined
func (h showHandler) listShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shows, err := h.showRepo.FindAllWithRelations()
		if err != nil {
			h.responder.RenderError(w, wrapDatabaseError("find shows", "shows", err))
			return
		}

		flattened := make([]models.Show, 0, len(shows))
		for _, show := range shows {
			flattened = append(flattened, *show)
		}

		h.responder.RenderPage(w, "shows.html", showsView{Shows: showViews(flattened)})
	}
}

func (h showHandler) createShowForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderPage(w, "new_show.html", showFormView{})
	}
}

// createShowSubmission books an artist at a venue. An unknown artist or venue
// id flashes a failure instead of surfacing a raw store error.
func (h showHandler) createShowSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := parseShowForm(r)

		show, err := form.Model()
		if err != nil {
			h.responder.RenderStatus(w, http.StatusBadRequest, "new_show.html", showFormView{
				Flash: fmt.Sprintf("An error occurred. Show could not be listed: %s.", err),
				Form:  form,
			})
			return
		}

		if err := h.showRepo.Add(&show); err != nil {
			h.logger.Error().Err(err).Msg("error creating show")
			h.responder.RenderPage(w, "home.html", homeView{
				Flash: "An error occurred. Show could not be listed.",
			})
			return
		}

		h.responder.RenderPage(w, "home.html", homeView{
			Flash: "Show was successfully listed!",
		})
	}
}
