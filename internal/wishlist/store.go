package wishlist

import (
	"context"
	"time"
)

// Item is one saved-product row. Duplicate (ProductID, SessionID) pairs
// are allowed; clients that care call Exists first.
type Item struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps per-session wishlist rows. Ids are unique and
// monotonically increasing for the store's lifetime, never reused.
type Store interface {
	ListForSession(ctx context.Context, sessionID string) ([]Item, error)
	Add(ctx context.Context, productID int64, sessionID string) (Item, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, productID int64, sessionID string) (bool, error)
	Ping(ctx context.Context) error
}

func NewStore() Store {
	return NewMemStore()
}
