package cart

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	m      map[int64]Item
	nextID int64
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[int64]Item)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListForSession(ctx context.Context, sessionID string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.m))
	for _, it := range s.m {
		if it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	// Ids are assigned in insert order, so this is insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Add(ctx context.Context, n NewItem) (Item, error) {
	if n.Quantity == 0 {
		n.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	it := Item{
		ID:             s.nextID,
		ProductID:      n.ProductID,
		Quantity:       n.Quantity,
		Size:           n.Size,
		Customizations: n.Customizations,
		SessionID:      n.SessionID,
	}
	s.m[it.ID] = it
	return it, nil
}

func (s *MemStore) UpdateQuantity(ctx context.Context, id int64, quantity int) (Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.m[id]
	if !ok {
		return Item{}, false, nil
	}
	it.Quantity = quantity
	s.m[id] = it
	return it, true, nil
}

func (s *MemStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[id]
	delete(s.m, id)
	return ok, nil
}

func (s *MemStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.m {
		if it.SessionID == sessionID {
			delete(s.m, id)
		}
	}
	return nil
}
