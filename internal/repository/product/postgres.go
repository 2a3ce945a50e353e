package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, key, sku, name, COALESCE(description, ''),
       regular_price_cents, sale_price_cents, tax_class, tax_status, shipping_class,
       delivery_types, weight_grams, length_mm, width_mm, height_mm, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Key, &p.SKU, &p.Name, &p.Description,
		&p.RegularPriceCents, &p.SalePriceCents, &p.TaxClass, &p.TaxStatus, &p.ShippingClass,
		&p.DeliveryTypes, &p.WeightGrams, &p.LengthMM, &p.WidthMM, &p.HeightMM, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) GetVariation(ctx context.Context, productID, variationID string) (*domain.ProductVariation, error) {
	const q = `
SELECT id::text, product_id::text, sku, regular_price_cents, sale_price_cents,
       delivery_types, weight_grams, length_mm, width_mm, height_mm, created_at
FROM product_variations
WHERE id = $1 AND product_id = $2
`
	var v domain.ProductVariation
	err := r.pool.QueryRow(ctx, q, variationID, productID).Scan(
		&v.ID, &v.ProductID, &v.SKU, &v.RegularPriceCents, &v.SalePriceCents,
		&v.DeliveryTypes, &v.WeightGrams, &v.LengthMM, &v.WidthMM, &v.HeightMM, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: variation id=%s product=%s not found", variationID, productID)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: variation id=%s error=%v", variationID, err)
		return nil, err
	}
	return &v, nil
}
