package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// seq columns record insertion order; the public identifiers are the
// generated id columns.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    seq        INTEGER PRIMARY KEY,
    id         TEXT NOT NULL UNIQUE,
    title      TEXT NOT NULL CHECK (title <> ''),
    status     TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'active', 'completed')),
    created_at INTEGER NOT NULL
);

-- At most one order may be active at any time.
CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_single_active
    ON orders(status) WHERE status = 'active';

CREATE TABLE IF NOT EXISTS order_items (
    seq      INTEGER PRIMARY KEY,
    id       TEXT NOT NULL UNIQUE,
    order_id TEXT NOT NULL REFERENCES orders(id),
    name     TEXT NOT NULL,
    location TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    found    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS templates (
    seq         INTEGER PRIMARY KEY,
    id          TEXT NOT NULL UNIQUE,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS template_items (
    seq         INTEGER PRIMARY KEY,
    template_id TEXT NOT NULL REFERENCES templates(id),
    name        TEXT NOT NULL,
    location    TEXT NOT NULL,
    quantity    INTEGER NOT NULL CHECK (quantity > 0)
);

CREATE INDEX IF NOT EXISTS idx_template_items_template ON template_items(template_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
