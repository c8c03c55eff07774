package memory

import (
	"sync"

	"food-ordering/internal/domain"
)

// OrderStore is an in-memory keyed collection of orders. Orders are
// never deleted; only their status mutates after insertion.
type OrderStore struct {
	mu     sync.Mutex
	orders map[int]domain.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[int]domain.Order),
	}
}

// Insert assigns the next identifier (same max+1-or-1 rule as the
// menu store) and stores the order.
func (s *OrderStore) Insert(order domain.Order) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := nextID(s.orders)
	order.ID = id
	s.orders[id] = order
	return id
}

func (s *OrderStore) Get(id int) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	return order, ok
}

// List returns a copy of the id-to-order mapping.
func (s *OrderStore) List() map[int]domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[int]domain.Order, len(s.orders))
	for id, order := range s.orders {
		result[id] = order
	}
	return result
}

// SetStatus validates the lifecycle transition and mutates the
// stored order's status. Check and set happen under one lock
// acquisition, so a request validated against a stale snapshot can
// never overwrite a state another request advanced in the meantime.
func (s *OrderStore) SetStatus(id int, status domain.Status) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.WrapError(domain.ErrOrderNotFound,
			"Order with ID %d not found", id)
	}

	if !order.Status.CanTransitionTo(status) {
		return domain.Order{}, domain.WrapError(domain.ErrInvalidStatusTransition,
			"Cannot transition from %s to %s", order.Status, status)
	}

	order.Status = status
	s.orders[id] = order
	return order, nil
}
