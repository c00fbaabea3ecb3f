package cart

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const itemColumns = `id, product_id, quantity, size, customizations, session_id`

// PostgresStore keeps cart rows in the cart_items table; ids come from
// its BIGSERIAL sequence, so they are monotonic and never reused.
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
			SELECT `+itemColumns+`
			FROM cart_items
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
			if err := scanItem(rows, &it); err != nil {
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

func (s *PostgresStore) Add(ctx context.Context, n NewItem) (Item, error) {
	if n.Quantity == 0 {
		n.Quantity = 1
	}

	it := Item{
		ProductID:      n.ProductID,
		Quantity:       n.Quantity,
		Size:           n.Size,
		Customizations: n.Customizations,
		SessionID:      n.SessionID,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.pool.QueryRow(ctx, `
			INSERT INTO cart_items (product_id, quantity, size, customizations, session_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, n.ProductID, n.Quantity, n.Size, n.Customizations, n.SessionID).Scan(&it.ID)
	})

	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *PostgresStore) UpdateQuantity(ctx context.Context, id int64, quantity int) (Item, bool, error) {
	var it Item

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return scanItem(s.pool.QueryRow(ctx, `
			UPDATE cart_items
			SET quantity = $2
			WHERE id = $1
			RETURNING `+itemColumns+`
		`, id, quantity), &it)
	})

	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

func (s *PostgresStore) Remove(ctx context.Context, id int64) (bool, error) {
	var removed bool

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		ct, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		removed = ct.RowsAffected() > 0
		return nil
	})

	return removed, err
}

func (s *PostgresStore) Clear(ctx context.Context, sessionID string) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
		return err
	})
}

func scanItem(row pgx.Row, it *Item) error {
	return row.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.Size, &it.Customizations, &it.SessionID)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
