package cart

import "context"

// Item is one cart row. Customizations stays nil when the client sent
// none, which marshals as JSON null like the source schema.
type Item struct {
	ID             int64    `json:"id"`
	ProductID      int64    `json:"productId"`
	Quantity       int      `json:"quantity"`
	Size           string   `json:"size"`
	Customizations []string `json:"customizations"`
	SessionID      string   `json:"sessionId"`
}

// NewItem is an already-validated insert. The store assigns the id and
// defaults Quantity to 1 when zero; it does not check that ProductID
// references a catalog row or that Size is legal for the product.
type NewItem struct {
	ProductID      int64
	Quantity       int
	Size           string
	Customizations []string
	SessionID      string
}

// Store keeps per-session cart rows. Ids are unique and monotonically
// increasing for the store's lifetime, never reused after removal.
// UpdateQuantity writes whatever quantity it is given; callers are
// expected to remove the row instead when the quantity drops below 1.
type Store interface {
	ListForSession(ctx context.Context, sessionID string) ([]Item, error)
	Add(ctx context.Context, n NewItem) (Item, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (Item, bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Clear(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

func NewStore() Store {
	return NewMemStore()
}
