package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Source loads the catalog from a products table. The table is read-only from
// the service's point of view; the position column preserves catalog order.
type Source struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewSource(log *slog.Logger, pool *pgxpool.Pool) *Source {
	return &Source{log: log, pool: pool}
}

const Schema = `CREATE TABLE IF NOT EXISTS products (
	position    SERIAL PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	category    TEXT NOT NULL,
	images      TEXT[] NOT NULL DEFAULT '{}',
	is_new      BOOLEAN NOT NULL DEFAULT FALSE
)`

func (s *Source) Load(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, description, price, category, images, is_new FROM products ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &category, &p.Images, &p.IsNew); err != nil {
			return nil, err
		}
		p.Category = domain.Category(category)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.log.Info("catalog read from postgres", "products", len(products))
	return products, nil
}
