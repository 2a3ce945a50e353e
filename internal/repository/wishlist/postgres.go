package wishlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error) {
	const q = `
SELECT id::text, created_by, created_at
FROM wishlists
WHERE created_by = $1 AND deleted_at IS NULL
`
	var wl domain.Wishlist
	err := r.pool.QueryRow(ctx, q, userID).Scan(&wl.ID, &wl.CreatedBy, &wl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT wi.id::text, wi.wishlist_id::text, wi.product_id::text, wi.variation_id::text, wi.created_at,
       p.key, p.sku, p.name, COALESCE(p.description, ''), p.regular_price_cents, p.sale_price_cents,
       p.tax_class, p.tax_status, p.shipping_class, p.delivery_types,
       p.weight_grams, p.length_mm, p.width_mm, p.height_mm, p.created_at
FROM wishlist_items wi
JOIN products p ON p.id = wi.product_id
WHERE wi.wishlist_id = $1
ORDER BY wi.created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, wl.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(
			&item.ID, &item.WishlistID, &item.ProductID, &item.VariationID, &item.CreatedAt,
			&item.Product.Key, &item.Product.SKU, &item.Product.Name, &item.Product.Description,
			&item.Product.RegularPriceCents, &item.Product.SalePriceCents,
			&item.Product.TaxClass, &item.Product.TaxStatus, &item.Product.ShippingClass, &item.Product.DeliveryTypes,
			&item.Product.WeightGrams, &item.Product.LengthMM, &item.Product.WidthMM, &item.Product.HeightMM,
			&item.Product.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Product.ID = item.ProductID
		wl.Items = append(wl.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &wl, nil
}

func (r *postgresRepo) MergeItem(ctx context.Context, userID string, ref domain.ItemRef) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var wishlistID string
	err = tx.QueryRow(ctx, `
INSERT INTO wishlists (created_by)
VALUES ($1)
ON CONFLICT (created_by) WHERE deleted_at IS NULL DO NOTHING
RETURNING id::text
`, userID).Scan(&wishlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `
SELECT id::text FROM wishlists WHERE created_by = $1 AND deleted_at IS NULL
`, userID).Scan(&wishlistID)
	}
	if err != nil {
		return mapConflict(err)
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO wishlist_items (wishlist_id, product_id, variation_id)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING
`, wishlistID, ref.ProductID, ref.VariationID); err != nil {
		return mapConflict(err)
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID string, ref domain.ItemRef) error {
	const q = `
DELETE FROM wishlist_items wi
USING wishlists w
WHERE wi.wishlist_id = w.id AND w.created_by = $1 AND w.deleted_at IS NULL
  AND wi.product_id = $2
  AND wi.variation_id IS NOT DISTINCT FROM $3
`
	_, err := r.pool.Exec(ctx, q, userID, ref.ProductID, ref.VariationID)
	return err
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}
