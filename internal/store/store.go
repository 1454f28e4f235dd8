// Package store is the order store: it owns orders and templates and enforces
// the order construction and activation rules.
package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/erazemk/lynx/internal/ids"
)

// Errors returned by store operations. None of them leave a partial change
// behind.
var (
	ErrEmptyTitle        = errors.New("order title is required")
	ErrNoItems           = errors.New("order needs at least one item")
	ErrInvalidItem       = errors.New("item name and location are required")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrOrderNotActive    = errors.New("order is not active")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Store holds orders and templates in a SQLite database.
type Store struct {
	db  *sql.DB
	ids ids.Generator
	now func() time.Time
}

// New creates a store on top of db. gen supplies identifiers for new
// orders, items and templates; now supplies creation timestamps and defaults
// to time.Now.
func New(db *sql.DB, gen ids.Generator, now func() time.Time) *Store {
	if gen == nil {
		gen = ids.UUID{}
	}
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, ids: gen, now: now}
}
