package store

import (
	"sync"

	"github.com/fjod/go_cart/pos/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore implements ProductStore with in-memory storage. It hands out
// the registered instances themselves, so stock changes made through a cart
// checkout are visible to every holder.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	order    []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

func (s *MemoryStore) Add(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID()]; exists {
		return ErrDuplicateProduct
	}
	s.products[product.ID()] = product
	s.order = append(s.order, product.ID())
	return nil
}

func (s *MemoryStore) Get(id uuid.UUID) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *MemoryStore) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id])
	}
	return result
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[uuid.UUID]*domain.Product)
	s.order = nil
	return nil
}
