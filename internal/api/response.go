package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/lynx/internal/pick"
	"github.com/erazemk/lynx/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// errorStatus maps store and session errors to an HTTP status. Anything it
// does not recognise is a server error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrEmptyTitle),
		errors.Is(err, store.ErrNoItems),
		errors.Is(err, store.ErrInvalidItem):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrTemplateNotFound),
		errors.Is(err, pick.ErrNoActiveOrder):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, store.ErrOrderNotActive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err with the status from errorStatus. Server errors are
// logged and reported with the generic message.
func writeError(w http.ResponseWriter, err error, message string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error(message, "error", err)
		jsonError(w, status, message)
		return
	}
	jsonError(w, status, err.Error())
}
