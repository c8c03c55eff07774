package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering/internal/domain"
)

func sampleOrder() domain.Order {
	return domain.Order{
		Customer: domain.Customer{
			Name:    "Alice Smith",
			Phone:   "5551234567",
			Address: "123 Oak Street, Springfield",
		},
		Items: []domain.OrderItem{
			{MenuItemID: 1, MenuItemName: "Margherita Pizza", Quantity: 1, UnitPrice: decimal.RequireFromString("15.99")},
		},
		Status: domain.StatusPending,
	}
}

func TestOrderStoreInsertAndGet(t *testing.T) {
	store := NewOrderStore()

	id := store.Insert(sampleOrder())
	assert.Equal(t, 1, id)

	order, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)

	_, ok = store.Get(42)
	assert.False(t, ok)
}

func TestOrderStoreSetStatus(t *testing.T) {
	store := NewOrderStore()
	id := store.Insert(sampleOrder())

	order, err := store.SetStatus(id, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, order.Status)

	stored, _ := store.Get(id)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	_, err = store.SetStatus(42, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderStoreSetStatusValidatesTransition(t *testing.T) {
	store := NewOrderStore()
	id := store.Insert(sampleOrder())

	// Skipping a stage is rejected and the order is untouched.
	_, err := store.SetStatus(id, domain.StatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	stored, _ := store.Get(id)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestOrderStoreSetStatusNeverRegressesDelivered(t *testing.T) {
	store := NewOrderStore()
	id := store.Insert(sampleOrder())

	for _, next := range []domain.Status{domain.StatusConfirmed, domain.StatusReady, domain.StatusDelivered} {
		_, err := store.SetStatus(id, next)
		require.NoError(t, err)
	}

	// A request validated against an older snapshot arrives after
	// the order reached its terminal state: the transition check
	// runs against the current state, under the same lock as the
	// write, so the stale update must fail.
	_, err := store.SetStatus(id, domain.StatusReady)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	stored, _ := store.Get(id)
	assert.Equal(t, domain.StatusDelivered, stored.Status)
}

func TestOrderStoreList(t *testing.T) {
	store := NewOrderStore()
	id1 := store.Insert(sampleOrder())
	id2 := store.Insert(sampleOrder())

	orders := store.List()
	require.Len(t, orders, 2)
	assert.Contains(t, orders, id1)
	assert.Contains(t, orders, id2)

	// The returned mapping is a copy; mutating it must not touch
	// the store.
	delete(orders, id1)
	_, ok := store.Get(id1)
	assert.True(t, ok)
}
