package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/pick"
)

// SessionHandler handles the pick session endpoints.
type SessionHandler struct {
	Session *pick.Session
	Metrics *metrics.Metrics
}

// Get handles GET /api/session. With no active order the order is null and
// the progress is zero.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.Session.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load session", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	jsonResponse(w, http.StatusOK, view)
}

// Toggle handles POST /api/session/items/{id}/toggle.
func (h *SessionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, err := h.Session.ToggleFound(r.Context(), id)
	if err != nil {
		slog.Warn("item not toggled", "item", id, "error", err)
		writeError(w, err, "failed to toggle item")
		return
	}

	h.Metrics.ItemToggled(item.Found)
	slog.Info("item toggled", "item", item.ID, "name", item.Name, "found", item.Found)
	jsonResponse(w, http.StatusOK, item)
}
