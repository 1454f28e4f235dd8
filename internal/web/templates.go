package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/model"
	"github.com/erazemk/lynx/internal/pick"
	"github.com/erazemk/lynx/internal/store"
	webembed "github.com/erazemk/lynx/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusName": func(status model.OrderStatus) string {
			switch status {
			case model.OrderStatusPending:
				return "Pending"
			case model.OrderStatusActive:
				return "Active"
			case model.OrderStatusCompleted:
				return "Completed"
			default:
				return string(status)
			}
		},
		"percent": func(p float64) string {
			return fmt.Sprintf("%.0f", p)
		},
		"itemNames": func(items []model.ItemInput) string {
			names := make([]string, len(items))
			for i, it := range items {
				names[i] = it.Name
			}
			return strings.Join(names, ", ")
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"index.html",
		"admin.html",
		"storage.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	Error   string
	Success string
	// Refresh reloads the page every Refresh seconds when non-zero.
	Refresh int
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store     *store.Store
	Session   *pick.Session
	Metrics   *metrics.Metrics
	Templates *Templates
	// DisplayRefresh is how often the storage display reloads itself.
	DisplayRefresh time.Duration
}
