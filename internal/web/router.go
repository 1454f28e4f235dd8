package web

import (
	"net/http"
	"time"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/pick"
	"github.com/erazemk/lynx/internal/store"
	webembed "github.com/erazemk/lynx/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(st *store.Store, session *pick.Session, m *metrics.Metrics, refresh time.Duration) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:          st,
		Session:        session,
		Metrics:        m,
		Templates:      templates,
		DisplayRefresh: refresh,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.Handle("GET /{$}", NoCacheMiddleware(http.HandlerFunc(s.IndexPage)))

	// Admin.
	mux.Handle("GET /admin", NoCacheMiddleware(http.HandlerFunc(s.AdminPage)))
	mux.HandleFunc("POST /admin/draft", s.DraftAddItemSubmit)
	mux.HandleFunc("POST /admin/orders", s.OrderCreateSubmit)
	mux.HandleFunc("POST /admin/orders/{id}/activate", s.OrderActivateSubmit)
	mux.HandleFunc("POST /admin/orders/{id}/complete", s.OrderCompleteSubmit)

	// Storage display.
	mux.Handle("GET /storage", NoCacheMiddleware(http.HandlerFunc(s.StoragePage)))
	mux.HandleFunc("POST /storage/items/{id}/toggle", s.ItemToggleSubmit)

	return mux, nil
}
