package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/model"
	"github.com/erazemk/lynx/internal/store"
)

// OrdersHandler handles order endpoints.
type OrdersHandler struct {
	Store   *store.Store
	Metrics *metrics.Metrics
}

type createOrderRequest struct {
	Title string            `json:"title"`
	Items []model.ItemInput `json:"items"`
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.ListOrders(r.Context())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Store.CreateOrder(r.Context(), req.Title, req.Items)
	if err != nil {
		slog.Warn("order rejected", "title", req.Title, "items", len(req.Items), "error", err)
		writeError(w, err, "failed to create order")
		return
	}

	h.Metrics.OrderEvent(metrics.EventCreated)
	slog.Info("order created", "order", order.ID, "title", order.Title, "items", len(order.Items))
	jsonResponse(w, http.StatusCreated, order)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Store.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}
	jsonResponse(w, http.StatusOK, order)
}

// Activate handles POST /api/orders/{id}/activate.
func (h *OrdersHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := h.Store.ActivateOrder(r.Context(), id)
	if err != nil {
		slog.Warn("order not activated", "order", id, "error", err)
		writeError(w, err, "failed to activate order")
		return
	}

	h.Metrics.OrderEvent(metrics.EventActivated)
	slog.Info("order activated", "order", order.ID, "title", order.Title)
	jsonResponse(w, http.StatusOK, order)
}

// Complete handles POST /api/orders/{id}/complete.
func (h *OrdersHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := h.Store.CompleteOrder(r.Context(), id)
	if err != nil {
		slog.Warn("order not completed", "order", id, "error", err)
		writeError(w, err, "failed to complete order")
		return
	}

	h.Metrics.OrderEvent(metrics.EventCompleted)
	slog.Info("order completed", "order", order.ID, "title", order.Title)
	jsonResponse(w, http.StatusOK, order)
}
