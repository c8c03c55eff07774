package interfaces

import (
	"food-ordering/internal/domain"
)

// Store ports (Adapter/Memory). Stores are synchronous in-memory
// collections; identifier assignment is max existing id + 1, or 1
// when the store is empty.

type MenuRepository interface {
	Insert(item domain.FoodItem) int
	Get(id int) (domain.FoodItem, bool)
	Update(id int, item domain.FoodItem) (domain.FoodItem, bool)
	Delete(id int) bool
	List(category string) []domain.FoodItem
}

type OrderRepository interface {
	Insert(order domain.Order) int
	Get(id int) (domain.Order, bool)
	List() map[int]domain.Order
	// SetStatus validates the status transition and applies it
	// atomically; it fails with ErrOrderNotFound or
	// ErrInvalidStatusTransition.
	SetStatus(id int, status domain.Status) (domain.Order, error)
}
