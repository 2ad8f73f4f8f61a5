package store

import (
	"context"
	"sync"

	perrors "github.com/shopfabrik/product-api/internal/errors"
)

// memory implements ProductStore using an in-memory map. It serves the
// "memory" store driver and the unit/e2e tests.
type memory struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewMemoryStore creates a new instance of ProductStore backed by an in-memory map.
func NewMemoryStore() ProductStore {
	return &memory{
		products: make(map[string]Product),
	}
}

func (s *memory) Put(_ context.Context, product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = product
	return nil
}

func (s *memory) GetByKey(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

func (s *memory) ScanAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

func (s *memory) QueryByCategory(_ context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			list = append(list, p)
		}
	}
	return list, nil
}

func (s *memory) Update(_ context.Context, id string, patch ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return perrors.ErrProductNotFound
	}
	patch.Apply(&p)
	s.products[id] = p
	return nil
}

func (s *memory) DeleteByKey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
	return nil
}
