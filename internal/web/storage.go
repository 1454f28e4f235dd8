package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/lynx/internal/pick"
)

type storagePageData struct {
	PageData
	pick.View
}

// StoragePage handles GET /storage, the wall display for the active order.
func (s *Server) StoragePage(w http.ResponseWriter, r *http.Request) {
	view, err := s.Session.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load pick session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "storage.html", &storagePageData{
		PageData: PageData{
			Title:   "Lynx Storage",
			Refresh: int(s.DisplayRefresh.Seconds()),
		},
		View: view,
	})
}

// ItemToggleSubmit handles POST /storage/items/{id}/toggle.
func (s *Server) ItemToggleSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, err := s.Session.ToggleFound(r.Context(), id)
	if err != nil {
		slog.Warn("item not toggled", "item", id, "error", err)
	} else {
		s.Metrics.ItemToggled(item.Found)
		slog.Info("item toggled", "item", item.ID, "name", item.Name, "found", item.Found)
	}
	http.Redirect(w, r, "/storage", http.StatusSeeOther)
}
