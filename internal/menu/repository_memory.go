package menu

import (
	"slices"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

// NewInMemoryRepository creates a repository holding a copy of seed.
func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	return &InMemoryRepository{
		items: slices.Clone(seed),
	}
}

func (r *InMemoryRepository) Append(item Item) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return len(r.items) - 1
}

func (r *InMemoryRepository) RemoveByName(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(item Item) bool {
		return item.Name == name
	})
	return before - len(r.items)
}

func (r *InMemoryRepository) Replace(index int, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.items) {
		return ErrIndexOutOfRange
	}
	r.items[index] = item
	return nil
}

func (r *InMemoryRepository) Get(index int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.items) {
		return Item{}, ErrIndexOutOfRange
	}
	return r.items[index], nil
}

func (r *InMemoryRepository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
