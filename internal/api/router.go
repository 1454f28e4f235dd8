package api

import (
	"net/http"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/pick"
	"github.com/erazemk/lynx/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s *store.Store, session *pick.Session, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	ordersHandler := &OrdersHandler{Store: s, Metrics: m}
	templatesHandler := &TemplatesHandler{Store: s}
	sessionHandler := &SessionHandler{Session: session, Metrics: m}

	// Orders.
	mux.HandleFunc("GET /api/orders", ordersHandler.List)
	mux.HandleFunc("POST /api/orders", ordersHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", ordersHandler.Get)
	mux.HandleFunc("POST /api/orders/{id}/activate", ordersHandler.Activate)
	mux.HandleFunc("POST /api/orders/{id}/complete", ordersHandler.Complete)

	// Templates are read-only.
	mux.HandleFunc("GET /api/templates", templatesHandler.List)
	mux.HandleFunc("GET /api/templates/{id}/draft", templatesHandler.Draft)

	// Pick session on the active order.
	mux.HandleFunc("GET /api/session", sessionHandler.Get)
	mux.HandleFunc("POST /api/session/items/{id}/toggle", sessionHandler.Toggle)

	return mux
}
