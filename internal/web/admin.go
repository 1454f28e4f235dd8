package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/model"
	"github.com/erazemk/lynx/internal/store"
)

type adminPageData struct {
	PageData
	Draft       model.Draft
	Templates   []model.Template
	Orders      []model.Order
	ActiveCount int
}

// AdminPage handles GET /admin. With ?template=<id> the draft form is
// pre-filled from that template.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	var draft model.Draft
	var pageErr string

	if id := r.URL.Query().Get("template"); id != "" {
		d, err := s.Store.InstantiateTemplate(r.Context(), id)
		switch {
		case errors.Is(err, store.ErrTemplateNotFound):
			slog.Warn("unknown template requested", "template", id)
			pageErr = "Template not found."
		case err != nil:
			slog.Error("failed to instantiate template", "template", id, "error", err)
			pageErr = "Could not load template."
		default:
			draft = d
		}
	}

	s.renderAdmin(w, r, draft, PageData{Error: pageErr})
}

// DraftAddItemSubmit handles POST /admin/draft. It appends the new item row
// to the posted draft and renders the page again; nothing is stored.
func (s *Server) DraftAddItemSubmit(w http.ResponseWriter, r *http.Request) {
	draft := parseDraft(r)

	name := strings.TrimSpace(r.FormValue("new_name"))
	location := strings.TrimSpace(r.FormValue("new_location"))
	if name == "" || location == "" {
		s.renderAdmin(w, r, draft, PageData{Error: "Item name and location are required."})
		return
	}

	quantity, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("new_quantity")))
	draft.Items = append(draft.Items, model.ItemInput{
		Name:     name,
		Location: location,
		Quantity: model.NormalizeQuantity(quantity),
	})
	s.renderAdmin(w, r, draft, PageData{})
}

// OrderCreateSubmit handles POST /admin/orders.
func (s *Server) OrderCreateSubmit(w http.ResponseWriter, r *http.Request) {
	draft := parseDraft(r)

	order, err := s.Store.CreateOrder(r.Context(), draft.Title, draft.Items)
	if err != nil {
		slog.Warn("order rejected", "title", draft.Title, "items", len(draft.Items), "error", err)
		s.renderAdmin(w, r, draft, PageData{Error: draftErrorMessage(err)})
		return
	}

	s.Metrics.OrderEvent(metrics.EventCreated)
	slog.Info("order created", "order", order.ID, "title", order.Title, "items", len(order.Items))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// OrderActivateSubmit handles POST /admin/orders/{id}/activate.
func (s *Server) OrderActivateSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := s.Store.ActivateOrder(r.Context(), id)
	if err != nil {
		slog.Warn("order not activated", "order", id, "error", err)
	} else {
		s.Metrics.OrderEvent(metrics.EventActivated)
		slog.Info("order activated", "order", order.ID, "title", order.Title)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// OrderCompleteSubmit handles POST /admin/orders/{id}/complete.
func (s *Server) OrderCompleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := s.Store.CompleteOrder(r.Context(), id)
	if err != nil {
		slog.Warn("order not completed", "order", id, "error", err)
	} else {
		s.Metrics.OrderEvent(metrics.EventCompleted)
		slog.Info("order completed", "order", order.ID, "title", order.Title)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) renderAdmin(w http.ResponseWriter, r *http.Request, draft model.Draft, page PageData) {
	templates, err := s.Store.ListTemplates(r.Context())
	if err != nil {
		slog.Error("failed to list templates", "error", err)
	}
	orders, err := s.Store.ListOrders(r.Context())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
	}
	counts, err := s.Store.CountOrdersByStatus(r.Context())
	if err != nil {
		slog.Error("failed to count orders", "error", err)
	}

	page.Title = "Lynx Admin"
	s.Templates.Render(w, "admin.html", &adminPageData{
		PageData:    page,
		Draft:       draft,
		Templates:   templates,
		Orders:      orders,
		ActiveCount: counts[model.OrderStatusActive],
	})
}

// parseDraft reads the draft carried in the admin form. Item rows are sent
// as parallel item_name, item_location and item_quantity fields.
func parseDraft(r *http.Request) model.Draft {
	if err := r.ParseForm(); err != nil {
		slog.Warn("failed to parse draft form", "error", err)
	}

	names := r.PostForm["item_name"]
	locations := r.PostForm["item_location"]
	quantities := r.PostForm["item_quantity"]

	draft := model.Draft{Title: r.PostForm.Get("title")}
	for i, name := range names {
		it := model.ItemInput{Name: name}
		if i < len(locations) {
			it.Location = locations[i]
		}
		if i < len(quantities) {
			it.Quantity, _ = strconv.Atoi(strings.TrimSpace(quantities[i]))
		}
		it.Quantity = model.NormalizeQuantity(it.Quantity)
		draft.Items = append(draft.Items, it)
	}
	return draft
}

func draftErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyTitle):
		return "Enter an order title."
	case errors.Is(err, store.ErrNoItems):
		return "Add at least one item."
	case errors.Is(err, store.ErrInvalidItem):
		return "Every item needs a name and a location."
	default:
		return "Could not create order."
	}
}
