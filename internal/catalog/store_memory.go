package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[int64]Product
}

func NewMemStore(seed []Product) *MemStore {
	s := &MemStore{m: make(map[int64]Product, len(seed))}
	for _, p := range seed {
		s.m[p.ID] = p
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(Product) bool { return true }), nil
}

func (s *MemStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func (s *MemStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (s *MemStore) ListPopular(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p Product) bool { return p.IsPopular }), nil
}

// collect returns matching products in id order, which is seed order.
// Callers must hold at least the read lock.
func (s *MemStore) collect(keep func(Product) bool) []Product {
	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
