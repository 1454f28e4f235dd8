package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/erazemk/lynx/internal/model"
)

// SeedTemplates stores the given templates in order. Templates without an ID
// get a generated one. Templates are read-only once seeded.
func (s *Store) SeedTemplates(ctx context.Context, templates []model.Template) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i, t := range templates {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("template %d: name is required", i+1)
		}
		id := t.ID
		if id == "" {
			id = s.ids.New()
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO templates (id, name, description) VALUES (?, ?, ?)`,
			id, t.Name, t.Description,
		)
		if err != nil {
			return fmt.Errorf("seeding template %q: %w", t.Name, err)
		}

		for _, it := range t.Items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO template_items (template_id, name, location, quantity) VALUES (?, ?, ?, ?)`,
				id, it.Name, it.Location, model.NormalizeQuantity(it.Quantity),
			)
			if err != nil {
				return fmt.Errorf("seeding template %q item: %w", t.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing templates: %w", err)
	}
	return nil
}

// ListTemplates returns all templates in seed order.
func (s *Store) ListTemplates(ctx context.Context) ([]model.Template, error) {
	templates, err := s.queryTemplates(ctx, `SELECT id, name, description FROM templates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	for i := range templates {
		templates[i].Items, err = s.templateItems(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return templates, nil
}

// GetTemplate returns a template by ID, or nil if it does not exist.
func (s *Store) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	templates, err := s.queryTemplates(ctx, `SELECT id, name, description FROM templates WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}
	if len(templates) == 0 {
		return nil, nil
	}

	t := &templates[0]
	t.Items, err = s.templateItems(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// InstantiateTemplate returns a draft copied from the template. The draft is
// not stored; pass it to CreateOrder once the admin is done editing it.
func (s *Store) InstantiateTemplate(ctx context.Context, id string) (model.Draft, error) {
	t, err := s.GetTemplate(ctx, id)
	if err != nil {
		return model.Draft{}, err
	}
	if t == nil {
		return model.Draft{}, ErrTemplateNotFound
	}
	return t.Draft(), nil
}

func (s *Store) queryTemplates(ctx context.Context, query string, args ...any) ([]model.Template, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.Template{}
	for rows.Next() {
		var t model.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *Store) templateItems(ctx context.Context, templateID string) ([]model.ItemInput, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, location, quantity FROM template_items WHERE template_id = ? ORDER BY seq`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing template items: %w", err)
	}
	defer rows.Close()

	items := []model.ItemInput{}
	for rows.Next() {
		var it model.ItemInput
		if err := rows.Scan(&it.Name, &it.Location, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scanning template item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
