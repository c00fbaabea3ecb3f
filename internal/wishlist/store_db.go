package wishlist

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore keeps wishlist rows in the wishlist_items table. No
// unique constraint on (product_id, session_id): duplicates are allowed
// like everywhere else in this store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.pool.Ping(ctx)
	})
}

func (s *PostgresStore) ListForSession(ctx context.Context, sessionID string) ([]Item, error) {
	var out []Item

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.pool.Query(ctx, `
			SELECT id, product_id, session_id, created_at
			FROM wishlist_items
			WHERE session_id = $1
			ORDER BY id ASC
		`, sessionID)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Item, 0, 8)
		for rows.Next() {
			var it Item
			if err := rows.Scan(&it.ID, &it.ProductID, &it.SessionID, &it.CreatedAt); err != nil {
				return err
			}
			out = append(out, it)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Add(ctx context.Context, productID int64, sessionID string) (Item, error) {
	it := Item{ProductID: productID, SessionID: sessionID}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.pool.QueryRow(ctx, `
			INSERT INTO wishlist_items (product_id, session_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`, productID, sessionID).Scan(&it.ID, &it.CreatedAt)
	})

	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *PostgresStore) Remove(ctx context.Context, id int64) (bool, error) {
	var removed bool

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		ct, err := s.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		removed = ct.RowsAffected() > 0
		return nil
	})

	return removed, err
}

func (s *PostgresStore) Exists(ctx context.Context, productID int64, sessionID string) (bool, error) {
	var exists bool

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM wishlist_items
				WHERE product_id = $1 AND session_id = $2
			)
		`, productID, sessionID).Scan(&exists)
	})

	return exists, err
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
