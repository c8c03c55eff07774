package memory

import (
	"sort"
	"sync"

	"food-ordering/internal/domain"
)

// MenuStore is an in-memory keyed collection of food items. A mutex
// guards the map so the invariants survive the HTTP server's
// per-request goroutines.
type MenuStore struct {
	mu    sync.Mutex
	items map[int]domain.FoodItem
}

func NewMenuStore() *MenuStore {
	return &MenuStore{
		items: make(map[int]domain.FoodItem),
	}
}

// Insert assigns the next identifier and stores the item. The next
// id is max existing id + 1, or 1 when empty, so an id can be reused
// after the highest-numbered item is deleted.
func (s *MenuStore) Insert(item domain.FoodItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := nextID(s.items)
	item.ID = id
	s.items[id] = item
	return id
}

func (s *MenuStore) Get(id int) (domain.FoodItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	return item, ok
}

// Update replaces the stored item, keeping its identifier.
func (s *MenuStore) Update(id int, item domain.FoodItem) (domain.FoodItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.FoodItem{}, false
	}

	item.ID = id
	s.items[id] = item
	return item, true
}

func (s *MenuStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}

	delete(s.items, id)
	return true
}

// List returns items sorted by id. A non-empty category restricts the
// result to exact, case-sensitive category matches.
func (s *MenuStore) List(category string) []domain.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.FoodItem, 0, len(s.items))
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func nextID[V any](m map[int]V) int {
	maxID := 0
	for id := range m {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
