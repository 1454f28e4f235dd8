package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/erazemk/lynx/internal/db"
	"github.com/erazemk/lynx/internal/ids"
	"github.com/erazemk/lynx/internal/model"
)

// tickingClock returns a clock that advances by one second on every call.
func tickingClock() func() time.Time {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(db.NewTestDB(t), ids.NewSequence("id"), tickingClock())
}

var kitItems = []model.ItemInput{
	{Name: "Arduino", Location: "A1-B2", Quantity: 1},
	{Name: "LED", Location: "A3-B1", Quantity: 1},
}

func mustCreate(t *testing.T, s *Store, title string) *model.Order {
	t.Helper()
	o, err := s.CreateOrder(context.Background(), title, kitItems)
	require.NoError(t, err)
	return o
}
