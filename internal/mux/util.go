package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"holdemtable-server/pkg/store"
	"holdemtable-server/pkg/table"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeError maps core errors onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, table.ErrPlayerNotFound):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, table.ErrTableFull):
		writeJSONError(w, http.StatusConflict, err)
	case errors.Is(err, store.ErrBusy):
		// transient: nothing was mutated and the caller may retry
		writeJSONError(w, http.StatusTooManyRequests, err)
	default:
		var ue table.UserError
		if errors.As(err, &ue) {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
