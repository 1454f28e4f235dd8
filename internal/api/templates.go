package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/lynx/internal/model"
	"github.com/erazemk/lynx/internal/store"
)

// TemplatesHandler handles template endpoints.
type TemplatesHandler struct {
	Store *store.Store
}

// List handles GET /api/templates.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Store.ListTemplates(r.Context())
	if err != nil {
		slog.Error("failed to list templates", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	if templates == nil {
		templates = []model.Template{}
	}
	jsonResponse(w, http.StatusOK, templates)
}

// Draft handles GET /api/templates/{id}/draft. The draft is not stored; the
// client edits it and posts it to /api/orders.
func (h *TemplatesHandler) Draft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.Store.InstantiateTemplate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "failed to instantiate template")
		return
	}
	jsonResponse(w, http.StatusOK, draft)
}
