package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lynx/internal/db"
	"github.com/erazemk/lynx/internal/model"
)

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order, err := s.CreateOrder(ctx, "Kit", kitItems)
	require.NoError(t, err)

	assert.Equal(t, "id-1", order.ID)
	assert.Equal(t, "Kit", order.Title)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)

	assert.Equal(t, model.Item{ID: "id-2", Name: "Arduino", Location: "A1-B2", Quantity: 1}, order.Items[0])
	assert.Equal(t, model.Item{ID: "id-3", Name: "LED", Location: "A3-B1", Quantity: 1}, order.Items[1])
}

func TestCreateOrder_FreshUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for range 5 {
		o := mustCreate(t, s, "Kit")
		assert.False(t, seen[o.ID], "order id %s reused", o.ID)
		seen[o.ID] = true
		for _, it := range o.Items {
			assert.False(t, seen[it.ID], "item id %s reused", it.ID)
			assert.False(t, it.Found)
			seen[it.ID] = true
		}
	}
}

func TestCreateOrder_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		title string
		items []model.ItemInput
		err   error
	}{
		{"empty title", "", kitItems, ErrEmptyTitle},
		{"blank title", "   ", kitItems, ErrEmptyTitle},
		{"no items", "Kit", nil, ErrNoItems},
		{"missing location", "Kit", []model.ItemInput{{Name: "LED", Quantity: 1}}, ErrInvalidItem},
		{"missing name", "Kit", []model.ItemInput{{Location: "A1", Quantity: 1}}, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			ctx := context.Background()

			order, err := s.CreateOrder(ctx, tt.title, tt.items)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, order)

			orders, err := s.ListOrders(ctx)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestCreateOrder_NormalizesInput(t *testing.T) {
	s := newTestStore(t)

	order, err := s.CreateOrder(context.Background(), "  Kit  ", []model.ItemInput{
		{Name: " Stapler ", Location: " B2-A1 ", Quantity: 0},
		{Name: "Pens", Location: "B1-A1", Quantity: -4},
	})
	require.NoError(t, err)

	assert.Equal(t, "Kit", order.Title)
	assert.Equal(t, "Stapler", order.Items[0].Name)
	assert.Equal(t, "B2-A1", order.Items[0].Location)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
}

func TestListOrders_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mustCreate(t, s, "First")
	second := mustCreate(t, s, "Second")
	third := mustCreate(t, s, "Third")

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, third.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.Equal(t, first.ID, orders[2].ID)
	assert.Len(t, orders[0].Items, 2)
}

func TestListOrders_SameTimestampUsesInsertionOrder(t *testing.T) {
	fixed := tickingClock()()
	s := New(db.NewTestDB(t), nil, func() time.Time { return fixed })
	ctx := context.Background()

	a := mustCreate(t, s, "A")
	b := mustCreate(t, s, "B")

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, b.ID, orders[0].ID)
	assert.Equal(t, a.ID, orders[1].ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	s := newTestStore(t)

	order, err := s.GetOrder(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func activeIDs(t *testing.T, s *Store) []string {
	t.Helper()
	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)

	var active []string
	for _, o := range orders {
		if o.Status == model.OrderStatusActive {
			active = append(active, o.ID)
		}
	}
	return active
}

func TestActivateOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	other := mustCreate(t, s, "Other")

	activated, err := s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusActive, activated.Status)
	assert.Equal(t, []string{kit.ID}, activeIDs(t, s))

	_, err = s.ActivateOrder(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, activeIDs(t, s))

	demoted, err := s.GetOrder(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, demoted.Status)

	active, err := s.ActiveOrder(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, other.ID, active.ID)
}

func TestActivateOrder_AlreadyActive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	_, err := s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	_, err = s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{kit.ID}, activeIDs(t, s))
}

func TestActivateOrder_UnknownIDLeavesStateUnchanged(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	_, err := s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	_, err = s.ActivateOrder(ctx, "missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, []string{kit.ID}, activeIDs(t, s))
}

func TestActivateOrder_CompletedIsTerminal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	_, err := s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)
	_, err = s.CompleteOrder(ctx, kit.ID)
	require.NoError(t, err)

	_, err = s.ActivateOrder(ctx, kit.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, activeIDs(t, s))
}

func TestActiveOrder_None(t *testing.T) {
	s := newTestStore(t)
	mustCreate(t, s, "Kit")

	active, err := s.ActiveOrder(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCompleteOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")

	_, err := s.CompleteOrder(ctx, kit.ID)
	require.ErrorIs(t, err, ErrInvalidTransition, "pending orders cannot be completed")

	_, err = s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	done, err := s.CompleteOrder(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, done.Status)

	_, err = s.CompleteOrder(ctx, "missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestToggleItemFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	itemID := kit.Items[0].ID

	_, err := s.ToggleItemFound(ctx, kit.ID, itemID)
	require.ErrorIs(t, err, ErrOrderNotActive)

	_, err = s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	item, err := s.ToggleItemFound(ctx, kit.ID, itemID)
	require.NoError(t, err)
	assert.True(t, item.Found)

	item, err = s.ToggleItemFound(ctx, kit.ID, itemID)
	require.NoError(t, err)
	assert.False(t, item.Found, "toggling twice restores the original state")

	_, err = s.ToggleItemFound(ctx, kit.ID, "missing")
	require.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.ToggleItemFound(ctx, "missing", itemID)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestToggleItemFound_ItemOfAnotherOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kit := mustCreate(t, s, "Kit")
	other := mustCreate(t, s, "Other")
	_, err := s.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	_, err = s.ToggleItemFound(ctx, kit.ID, other.Items[0].ID)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestCountOrdersByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	counts, err := s.CountOrdersByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[model.OrderStatus]int{
		model.OrderStatusPending:   0,
		model.OrderStatusActive:    0,
		model.OrderStatusCompleted: 0,
	}, counts)

	a := mustCreate(t, s, "A")
	mustCreate(t, s, "B")
	_, err = s.ActivateOrder(ctx, a.ID)
	require.NoError(t, err)

	counts, err = s.CountOrdersByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[model.OrderStatusPending])
	assert.Equal(t, 1, counts[model.OrderStatusActive])
	assert.Equal(t, 0, counts[model.OrderStatusCompleted])
}
