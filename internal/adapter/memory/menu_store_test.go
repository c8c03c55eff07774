package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering/internal/domain"
)

func pizza() domain.FoodItem {
	return domain.FoodItem{
		Name:      "Margherita Pizza",
		Category:  "main_course",
		Price:     decimal.RequireFromString("15.99"),
		Available: true,
	}
}

func TestMenuStoreInsertAssignsSequentialIDs(t *testing.T) {
	store := NewMenuStore()

	assert.Equal(t, 1, store.Insert(pizza()))
	assert.Equal(t, 2, store.Insert(pizza()))
	assert.Equal(t, 3, store.Insert(pizza()))
}

func TestMenuStoreIDReuseAfterMaxDeleted(t *testing.T) {
	store := NewMenuStore()
	store.Insert(pizza())
	store.Insert(pizza())
	id3 := store.Insert(pizza())

	// Deleting the highest-numbered item frees its id for reuse.
	require.True(t, store.Delete(id3))
	assert.Equal(t, 3, store.Insert(pizza()))

	// Deleting a lower id does not: next is still max+1.
	require.True(t, store.Delete(1))
	assert.Equal(t, 4, store.Insert(pizza()))
}

func TestMenuStoreGet(t *testing.T) {
	store := NewMenuStore()
	id := store.Insert(pizza())

	item, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, "Margherita Pizza", item.Name)

	_, ok = store.Get(999)
	assert.False(t, ok)
}

func TestMenuStoreUpdate(t *testing.T) {
	store := NewMenuStore()
	id := store.Insert(pizza())

	updated := pizza()
	updated.Name = "Updated Pizza"
	updated.Price = decimal.RequireFromString("13.99")

	item, ok := store.Update(id, updated)
	require.True(t, ok)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, "Updated Pizza", item.Name)

	stored, _ := store.Get(id)
	assert.Equal(t, "Updated Pizza", stored.Name)

	_, ok = store.Update(999, updated)
	assert.False(t, ok)
}

func TestMenuStoreDelete(t *testing.T) {
	store := NewMenuStore()
	id := store.Insert(pizza())

	assert.True(t, store.Delete(id))
	assert.False(t, store.Delete(id))

	_, ok := store.Get(id)
	assert.False(t, ok)
}

func TestMenuStoreListFiltersByCategory(t *testing.T) {
	store := NewMenuStore()

	main := pizza()
	store.Insert(main)

	starter := pizza()
	starter.Name = "Bruschetta"
	starter.Category = "appetizer"
	store.Insert(starter)

	all := store.List("")
	assert.Len(t, all, 2)

	appetizers := store.List("appetizer")
	require.Len(t, appetizers, 1)
	assert.Equal(t, "Bruschetta", appetizers[0].Name)

	// Category matching is exact and case-sensitive.
	assert.Empty(t, store.List("Appetizer"))
	assert.Empty(t, store.List("dessert"))
}

func TestMenuStoreListSortedByID(t *testing.T) {
	store := NewMenuStore()
	for i := 0; i < 5; i++ {
		store.Insert(pizza())
	}

	items := store.List("")
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
	}
}
