package catalog

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

// price and rating are NUMERIC columns but decimal strings on the wire.
const productColumns = `id, name, description, price::text, image, category, rating::text, review_count, sizes, is_popular`

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

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	var p Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return scanProduct(s.pool.QueryRow(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1
		`, id), &p)
	})

	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE LOWER(category) = LOWER($1)
		ORDER BY id ASC
	`, category)
}

func (s *PostgresStore) ListPopular(ctx context.Context) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_popular
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) query(ctx context.Context, sql string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var p Product
			if err := scanProduct(rows, &p); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.Category, &p.Rating, &p.ReviewCount, &p.Sizes, &p.IsPopular,
	)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
