package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const q = `
SELECT id::text, code, discount_type, discount_value::text,
       minimum_spend_cents, maximum_spend_cents, free_shipping,
       expires_at, max_usage, usage_count, created_at
FROM coupons
WHERE code = $1
`
	var c domain.Coupon
	var value string
	err := r.pool.QueryRow(ctx, q, code).Scan(
		&c.ID, &c.Code, &c.DiscountType, &value,
		&c.MinimumSpendCents, &c.MaximumSpendCents, &c.FreeShipping,
		&c.ExpiresAt, &c.MaxUsage, &c.UsageCount, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if c.DiscountValue, err = decimal.NewFromString(value); err != nil {
		return nil, err
	}
	return &c, nil
}
