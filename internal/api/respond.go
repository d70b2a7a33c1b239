package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "smarak/internal/errors"
	"smarak/internal/service"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to HTTP status codes. Anything unrecognized
// is logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrTooManyVisitors),
		errors.Is(err, apperrors.ErrUnsupportedPayment),
		errors.Is(err, apperrors.ErrInvalidSlot):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrSlotUnavailable),
		errors.Is(err, apperrors.ErrAlreadyReserved),
		errors.Is(err, apperrors.ErrAlreadyPaid),
		errors.Is(err, apperrors.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
