package address

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.AddressInfo, error) {
	const q = `
SELECT id::text, country, state, city, zip
FROM addresses
WHERE id = $1
`
	var a domain.AddressInfo
	err := r.pool.QueryRow(ctx, q, id).Scan(&a.ID, &a.Country, &a.State, &a.City, &a.Zip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
