package catalog

import "context"

// Product is a purchasable drink. Price and Rating stay decimal strings
// on the wire; the client does all derived pricing.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Rating      string   `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Sizes       []string `json:"sizes"`
	IsPopular   bool     `json:"isPopular"`
}

// Store is read-only: the catalog is seeded once and never mutated.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, bool, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	ListPopular(ctx context.Context) ([]Product, error)
	Ping(ctx context.Context) error
}

func NewStore() Store {
	return NewMemStore(SeedProducts())
}
