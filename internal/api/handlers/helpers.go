package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HelioOssola/cep-distance/internal/domain"
	"github.com/HelioOssola/cep-distance/internal/platform/logging"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response failed",
			"method", r.Method, "path", r.URL.Path, "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// statusForError maps the domain taxonomy to HTTP statuses. Anything outside
// the taxonomy is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingInput),
		errors.Is(err, domain.ErrInvalidPostalCode),
		errors.Is(err, domain.ErrGeocodeNotFound),
		errors.Is(err, domain.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorKind labels a failure for metrics without leaking message text.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, domain.ErrInvalidPostalCode):
		return "invalid_postal_code"
	case errors.Is(err, domain.ErrGeocodeNotFound):
		return "geocode_not_found"
	case errors.Is(err, domain.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	}
	return "unexpected"
}

// fail writes the error mapped to its status. Uncategorized errors are logged
// and masked; categorized ones carry their message (upstream failures keep
// the remote detail for diagnostics).
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logging.Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeError(w, r, status, "internal server error")
		return
	}
	writeError(w, r, status, err.Error())
}
