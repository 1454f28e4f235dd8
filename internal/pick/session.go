// Package pick implements the pick session: found/unfound tracking over the
// items of the currently active order.
package pick

import (
	"context"
	"errors"
	"fmt"

	"github.com/erazemk/lynx/internal/model"
)

// ErrNoActiveOrder is returned when there is no order to pick.
var ErrNoActiveOrder = errors.New("no active order")

// ActiveOrderSource hands the active order over to a session and applies
// found toggles to it. *store.Store implements it.
type ActiveOrderSource interface {
	ActiveOrder(ctx context.Context) (*model.Order, error)
	ToggleItemFound(ctx context.Context, orderID, itemID string) (*model.Item, error)
}

// Session is the display-side view of the active order.
type Session struct {
	source ActiveOrderSource
}

// NewSession returns a session reading the active order from source.
func NewSession(source ActiveOrderSource) *Session {
	return &Session{source: source}
}

// Current returns the active order, or ErrNoActiveOrder.
func (s *Session) Current(ctx context.Context) (*model.Order, error) {
	order, err := s.source.ActiveOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active order: %w", err)
	}
	if order == nil {
		return nil, ErrNoActiveOrder
	}
	return order, nil
}

// ToggleFound flips the found flag of an item of the active order and
// returns the item's new state.
func (s *Session) ToggleFound(ctx context.Context, itemID string) (*model.Item, error) {
	order, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.source.ToggleItemFound(ctx, order.ID, itemID)
}

// Progress returns the progress of the active order. With no active order
// the progress is zero.
func (s *Session) Progress(ctx context.Context) (model.Progress, error) {
	order, err := s.Current(ctx)
	if errors.Is(err, ErrNoActiveOrder) {
		return model.NewProgress(0, 0), nil
	}
	if err != nil {
		return model.Progress{}, err
	}
	return order.Progress(), nil
}

// View is a snapshot of the session for rendering.
type View struct {
	Order    *model.Order   `json:"order"`
	Progress model.Progress `json:"progress"`
}

// Snapshot returns the active order (nil when none) together with its
// progress, read in one pass.
func (s *Session) Snapshot(ctx context.Context) (View, error) {
	order, err := s.Current(ctx)
	if errors.Is(err, ErrNoActiveOrder) {
		return View{Progress: model.NewProgress(0, 0)}, nil
	}
	if err != nil {
		return View{}, err
	}
	return View{Order: order, Progress: order.Progress()}, nil
}
