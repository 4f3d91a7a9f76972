package fyyur

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/rs/zerolog"
)

//go:embed templates
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS,
	"templates/pages/*.html",
	"templates/forms/*.html",
	"templates/errors/*.html",
))

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// RenderPage renders the named template with a 200 status.
func (r Responder) RenderPage(w http.ResponseWriter, name string, data any) {
	r.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders the named template with the given status. The template
// executes into a buffer first so a template failure becomes a clean 500
// instead of a half-written page.
func (r Responder) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("error rendering template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// RenderError maps err onto the site's error pages: 404 gets its own page,
// everything else renders the 500 page.
func (r Responder) RenderError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		r.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	r.logger.Error().Msg(err.Error())
	r.RenderStatus(w, http.StatusInternalServerError, "500.html", nil)
}

// WriteJSON serves the fetch()-driven endpoints, such as venue deletion.
func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteJSONError is the JSON counterpart of RenderError.
func (r Responder) WriteJSONError(w http.ResponseWriter, err error) {
	status := errs.StatusCode(err)
	if status >= http.StatusInternalServerError {
		r.logger.Error().Msg(err.Error())
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	body := map[string]any{"success": false, "message": err.Error()}
	if jsonData, marshalErr := json.Marshal(body); marshalErr == nil {
		w.Write(jsonData)
	}
}
