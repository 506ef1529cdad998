package preferences

import "sync"

// Service holds the display preferences of the settings screen.
type Service struct {
	mu          sync.RWMutex
	sortByPrice bool
}

func NewService(sortByPrice bool) *Service {
	return &Service{sortByPrice: sortByPrice}
}

// SortByPrice reports whether list views order items by ascending price.
func (s *Service) SortByPrice() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortByPrice
}

func (s *Service) SetSortByPrice(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortByPrice = on
}

// Toggle flips the sort preference and returns the new value.
func (s *Service) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortByPrice = !s.sortByPrice
	return s.sortByPrice
}
