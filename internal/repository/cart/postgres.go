package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, created_by, created_at
FROM carts
WHERE created_by = $1 AND deleted_at IS NULL
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, userID).Scan(&cart.ID, &cart.CreatedBy, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if cart.Items, err = r.fetchItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	if cart.Coupons, err = r.fetchCoupons(ctx, cart.ID); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	const q = `
SELECT ci.id::text, ci.cart_id::text, ci.product_id::text, ci.variation_id::text, ci.quantity, ci.created_at,
       p.key, p.sku, p.name, COALESCE(p.description, ''), p.regular_price_cents, p.sale_price_cents,
       p.tax_class, p.tax_status, p.shipping_class, p.delivery_types,
       p.weight_grams, p.length_mm, p.width_mm, p.height_mm, p.created_at,
       COALESCE(v.sku, ''), COALESCE(v.regular_price_cents, 0), COALESCE(v.sale_price_cents, 0),
       COALESCE(v.delivery_types, '{}'), COALESCE(v.weight_grams, 0),
       COALESCE(v.length_mm, 0), COALESCE(v.width_mm, 0), COALESCE(v.height_mm, 0),
       COALESCE(v.created_at, ci.created_at)
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
LEFT JOIN product_variations v ON v.id = ci.variation_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var variation domain.ProductVariation
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.VariationID, &item.Quantity, &item.CreatedAt,
			&item.Product.Key, &item.Product.SKU, &item.Product.Name, &item.Product.Description,
			&item.Product.RegularPriceCents, &item.Product.SalePriceCents,
			&item.Product.TaxClass, &item.Product.TaxStatus, &item.Product.ShippingClass, &item.Product.DeliveryTypes,
			&item.Product.WeightGrams, &item.Product.LengthMM, &item.Product.WidthMM, &item.Product.HeightMM,
			&item.Product.CreatedAt,
			&variation.SKU, &variation.RegularPriceCents, &variation.SalePriceCents,
			&variation.DeliveryTypes, &variation.WeightGrams,
			&variation.LengthMM, &variation.WidthMM, &variation.HeightMM,
			&variation.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Product.ID = item.ProductID
		if item.VariationID != nil {
			variation.ID = *item.VariationID
			variation.ProductID = item.ProductID
			item.Variation = &variation
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) fetchCoupons(ctx context.Context, cartID string) ([]domain.Coupon, error) {
	const q = `
SELECT c.id::text, c.code, c.discount_type, c.discount_value::text,
       c.minimum_spend_cents, c.maximum_spend_cents, c.free_shipping,
       c.expires_at, c.max_usage, c.usage_count, c.created_at
FROM coupons c
JOIN cart_coupons cc ON cc.coupon_id = c.id
WHERE cc.cart_id = $1
ORDER BY c.code ASC
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		var value string
		if err := rows.Scan(
			&c.ID, &c.Code, &c.DiscountType, &value,
			&c.MinimumSpendCents, &c.MaximumSpendCents, &c.FreeShipping,
			&c.ExpiresAt, &c.MaxUsage, &c.UsageCount, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		if c.DiscountValue, err = decimal.NewFromString(value); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *postgresRepo) MergeItem(ctx context.Context, userID string, ref domain.ItemRef, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return mapConflict(err)
	}

	rows, err := lockProductLines(ctx, tx, cartID, ref.ProductID)
	if err != nil {
		return err
	}

	op, itemID := resolveMerge(rows, ref.VariationID)
	switch op {
	case mergeUpdate:
		_, err = tx.Exec(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, itemID)
	case mergeConvert:
		_, err = tx.Exec(ctx, `UPDATE cart_items SET variation_id = $1, quantity = $2 WHERE id = $3`, ref.VariationID, quantity, itemID)
	default:
		_, err = tx.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, variation_id, quantity)
VALUES ($1, $2, $3, $4)
`, cartID, ref.ProductID, ref.VariationID, quantity)
	}
	if err != nil {
		return mapConflict(err)
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
SELECT ci.id::text
FROM cart_items ci
JOIN carts c ON c.id = ci.cart_id
WHERE c.created_by = $1 AND c.deleted_at IS NULL AND ci.product_id = $2
FOR UPDATE OF ci
`
	rows, err := tx.Query(ctx, q, userID, productID)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	// The operation addresses lines by product only; several variations of
	// the same product make the target ambiguous.
	if len(ids) != 1 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, ids[0]); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveItems(ctx context.Context, userID string, productIDs []string) error {
	const q = `
DELETE FROM cart_items ci
USING carts c
WHERE ci.cart_id = c.id AND c.created_by = $1 AND c.deleted_at IS NULL
  AND ci.product_id = ANY($2::uuid[])
`
	_, err := r.pool.Exec(ctx, q, userID, productIDs)
	return err
}

func (r *postgresRepo) AttachCoupon(ctx context.Context, userID, couponID string) error {
	cartID, err := r.liveCartID(ctx, userID)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO cart_coupons (cart_id, coupon_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, cartID, couponID)
	return err
}

func (r *postgresRepo) DetachCoupon(ctx context.Context, userID, couponID string) error {
	cartID, err := r.liveCartID(ctx, userID)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_coupons WHERE cart_id = $1 AND coupon_id = $2
`, cartID, couponID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) liveCartID(ctx context.Context, userID string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
SELECT id::text FROM carts WHERE created_by = $1 AND deleted_at IS NULL
`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return id, nil
}

// ensureCart returns the user's live cart id, creating the cart when absent.
// The partial unique index on carts(created_by) makes concurrent creators
// collide instead of producing two carts.
func ensureCart(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `
INSERT INTO carts (created_by)
VALUES ($1)
ON CONFLICT (created_by) WHERE deleted_at IS NULL DO NOTHING
RETURNING id::text
`, userID).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	err = tx.QueryRow(ctx, `
SELECT id::text FROM carts WHERE created_by = $1 AND deleted_at IS NULL
`, userID).Scan(&cartID)
	return cartID, err
}

func lockProductLines(ctx context.Context, tx pgx.Tx, cartID, productID string) ([]itemRow, error) {
	const q = `
SELECT id::text, variation_id::text
FROM cart_items
WHERE cart_id = $1 AND product_id = $2
ORDER BY created_at ASC
FOR UPDATE
`
	rows, err := tx.Query(ctx, q, cartID, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []itemRow
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(&row.id, &row.variationID); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}
