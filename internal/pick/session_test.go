package pick

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lynx/internal/db"
	"github.com/erazemk/lynx/internal/ids"
	"github.com/erazemk/lynx/internal/model"
	"github.com/erazemk/lynx/internal/store"
)

// fakeSource keeps a single order in memory.
type fakeSource struct {
	order *model.Order
	err   error
}

func (f *fakeSource) ActiveOrder(context.Context) (*model.Order, error) {
	return f.order, f.err
}

func (f *fakeSource) ToggleItemFound(_ context.Context, orderID, itemID string) (*model.Item, error) {
	if f.order == nil || f.order.ID != orderID {
		return nil, store.ErrOrderNotActive
	}
	for i := range f.order.Items {
		if f.order.Items[i].ID == itemID {
			f.order.Items[i].Found = !f.order.Items[i].Found
			it := f.order.Items[i]
			return &it, nil
		}
	}
	return nil, store.ErrItemNotFound
}

func TestSession_NoActiveOrder(t *testing.T) {
	s := NewSession(&fakeSource{})
	ctx := context.Background()

	_, err := s.Current(ctx)
	require.ErrorIs(t, err, ErrNoActiveOrder)

	_, err = s.ToggleFound(ctx, "1")
	require.ErrorIs(t, err, ErrNoActiveOrder)

	p, err := s.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Percent)

	view, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, view.Order)
}

func TestSession_SourceError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSession(&fakeSource{err: boom})

	_, err := s.Progress(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSession_ToggleAndProgress(t *testing.T) {
	src := &fakeSource{order: &model.Order{
		ID:     "o1",
		Status: model.OrderStatusActive,
		Items: []model.Item{
			{ID: "1", Name: "Arduino Uno R3"},
			{ID: "2", Name: "Breadboard Large"},
			{ID: "3", Name: "Jumper Wires (M-M)", Found: true},
			{ID: "4", Name: "LED Pack (Red)"},
		},
	}}
	s := NewSession(src)
	ctx := context.Background()

	p, err := s.Progress(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, p.Percent, 1e-9)

	item, err := s.ToggleFound(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.Found)

	p, err = s.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Found)
	assert.InDelta(t, 50.0, p.Percent, 1e-9)

	_, err = s.ToggleFound(ctx, "missing")
	require.ErrorIs(t, err, store.ErrItemNotFound)

	p, err = s.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Found, "unknown item ids leave the order unchanged")
}

func TestSession_WithStore(t *testing.T) {
	st := store.New(db.NewTestDB(t), ids.NewSequence("id"), nil)
	s := NewSession(st)
	ctx := context.Background()

	kit, err := st.CreateOrder(ctx, "Kit", []model.ItemInput{
		{Name: "Arduino", Location: "A1-B2", Quantity: 1},
		{Name: "LED", Location: "A3-B1", Quantity: 1},
	})
	require.NoError(t, err)
	_, err = st.ActivateOrder(ctx, kit.ID)
	require.NoError(t, err)

	for _, it := range kit.Items {
		_, err := s.ToggleFound(ctx, it.ID)
		require.NoError(t, err)
	}

	p, err := s.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Percent)
	assert.True(t, p.Complete)

	current, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusActive, current.Status, "reaching 100% does not complete the order")
}

func TestSession_FollowsActivation(t *testing.T) {
	st := store.New(db.NewTestDB(t), ids.NewSequence("id"), nil)
	s := NewSession(st)
	ctx := context.Background()

	items := []model.ItemInput{{Name: "Stapler", Location: "B2-A1", Quantity: 1}}
	a, err := st.CreateOrder(ctx, "A", items)
	require.NoError(t, err)
	b, err := st.CreateOrder(ctx, "B", items)
	require.NoError(t, err)

	_, err = st.ActivateOrder(ctx, a.ID)
	require.NoError(t, err)
	_, err = s.ToggleFound(ctx, a.Items[0].ID)
	require.NoError(t, err)

	_, err = st.ActivateOrder(ctx, b.ID)
	require.NoError(t, err)

	view, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Order)
	assert.Equal(t, b.ID, view.Order.ID)
	assert.Equal(t, 0, view.Progress.Found)

	_, err = s.ToggleFound(ctx, a.Items[0].ID)
	require.ErrorIs(t, err, store.ErrItemNotFound, "items of a demoted order are not part of the session")
}
