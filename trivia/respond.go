package trivia

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError translates err into the API's structured error body. Raw store
// errors never reach the client: anything outside the taxonomy becomes a
// generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSONStatus(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Error:   http.StatusInternalServerError,
			Message: errs.ErrInternal.Error(),
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, errorResponse{
		Success: false,
		Error:   apiErr.StatusCode,
		Message: apiErr.Error(),
	})
}
