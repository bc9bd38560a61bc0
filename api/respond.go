package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "Internal Server Error"

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data with a 200 status.
func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal first so a failure can still become a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		status = http.StatusInternalServerError
		jsonData, _ = json.Marshal(ErrorResponse{Error: internalErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps err to a status code and an {"error": ...} body. Server-side
// failures are logged with their cause and reported generically.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
		return
	}

	if apiErr.Is5xx() {
		r.logger.Error().Int("status", apiErr.StatusCode).Msg(apiErr.GetFullError())
		r.WriteJSONStatus(w, apiErr.StatusCode, ErrorResponse{Error: internalErrorMessage})
		return
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Error(),
		Field: apiErr.Field,
	})
}
