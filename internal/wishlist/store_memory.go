package wishlist

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemStore struct {
	mu     sync.RWMutex
	m      map[int64]Item
	nextID int64

	// now is swappable for tests.
	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[int64]Item), now: time.Now}
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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Add(ctx context.Context, productID int64, sessionID string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	it := Item{
		ID:        s.nextID,
		ProductID: productID,
		SessionID: sessionID,
		CreatedAt: s.now().UTC(),
	}
	s.m[it.ID] = it
	return it, nil
}

func (s *MemStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[id]
	delete(s.m, id)
	return ok, nil
}

func (s *MemStore) Exists(ctx context.Context, productID int64, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.m {
		if it.ProductID == productID && it.SessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}
