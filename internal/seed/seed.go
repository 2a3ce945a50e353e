package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Key               string
	SKU               string
	Name              string
	Description       string
	RegularPriceCents int64
	SalePriceCents    int64
	DeliveryTypes     []string
	WeightGrams       int
	Variations        []variationSeed
}

type variationSeed struct {
	SKU               string
	RegularPriceCents int64
	SalePriceCents    int64
	WeightGrams       int
}

type couponSeed struct {
	Code              string
	DiscountType      string
	DiscountValue     string
	MinimumSpendCents int64
	MaximumSpendCents int64
	FreeShipping      bool
	ExpiresAt         *time.Time
	MaxUsage          int
}

type addressSeed struct {
	ID      string
	OwnerID string
	Country string
	State   string
	City    string
	Zip     string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Key:               "demo-shirt",
			SKU:               "SKU-DEMO-TSHIRT",
			Name:              "Demo T-Shirt",
			Description:       "Soft cotton tee for demo purposes",
			RegularPriceCents: 1999,
			DeliveryTypes:     []string{"physical"},
			WeightGrams:       180,
			Variations: []variationSeed{
				{SKU: "SKU-DEMO-TSHIRT-S", RegularPriceCents: 1999, WeightGrams: 160},
				{SKU: "SKU-DEMO-TSHIRT-XL", RegularPriceCents: 2199, SalePriceCents: 1899, WeightGrams: 210},
			},
		},
		{
			Key:               "demo-mug",
			SKU:               "SKU-DEMO-MUG",
			Name:              "Demo Mug",
			Description:       "Ceramic mug with demo logo",
			RegularPriceCents: 1299,
			SalePriceCents:    999,
			DeliveryTypes:     []string{"physical"},
			WeightGrams:       350,
		},
		{
			Key:               "demo-ebook",
			SKU:               "SKU-DEMO-EBOOK",
			Name:              "Demo Cookbook (PDF)",
			Description:       "Downloadable cookbook, no shipping",
			RegularPriceCents: 899,
			DeliveryTypes:     []string{"digital"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Key, err)
		}
	}

	coupons := []couponSeed{
		{Code: "SAVE10", DiscountType: "PERCENTAGE", DiscountValue: "10"},
		{Code: "FIVEOFF", DiscountType: "FIXED_CART", DiscountValue: "5", MinimumSpendCents: 2000},
		{Code: "FREESHIP", DiscountType: "FIXED_CART", DiscountValue: "0", FreeShipping: true},
	}

	for _, c := range coupons {
		if err := upsertCoupon(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert coupon %s: %w", c.Code, err)
		}
	}

	addresses := []addressSeed{
		{
			ID:      "6b1f6f2e-0000-4000-8000-000000000001",
			OwnerID: "demo-user",
			Country: "US",
			State:   "CA",
			City:    "San Francisco",
			Zip:     "94105",
		},
		{
			ID:      "6b1f6f2e-0000-4000-8000-000000000002",
			OwnerID: "demo-user",
			Country: "DE",
			City:    "Berlin",
			Zip:     "10115",
		},
	}

	for _, a := range addresses {
		if err := upsertAddress(ctx, pool, a); err != nil {
			return fmt.Errorf("upsert address %s: %w", a.ID, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (key, sku, name, description, regular_price_cents, sale_price_cents, delivery_types, weight_grams)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (key) DO UPDATE
SET sku = EXCLUDED.sku,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    regular_price_cents = EXCLUDED.regular_price_cents,
    sale_price_cents = EXCLUDED.sale_price_cents,
    delivery_types = EXCLUDED.delivery_types,
    weight_grams = EXCLUDED.weight_grams
RETURNING id::text
`
	var productID string
	err := pool.QueryRow(ctx, q,
		p.Key, p.SKU, p.Name, p.Description,
		p.RegularPriceCents, p.SalePriceCents, p.DeliveryTypes, p.WeightGrams,
	).Scan(&productID)
	if err != nil {
		return err
	}

	for _, v := range p.Variations {
		if err := upsertVariation(ctx, pool, productID, v); err != nil {
			return fmt.Errorf("variation %s: %w", v.SKU, err)
		}
	}
	return nil
}

func upsertVariation(ctx context.Context, pool *pgxpool.Pool, productID string, v variationSeed) error {
	const q = `
INSERT INTO product_variations (product_id, sku, regular_price_cents, sale_price_cents, weight_grams)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (product_id, sku) DO UPDATE
SET regular_price_cents = EXCLUDED.regular_price_cents,
    sale_price_cents = EXCLUDED.sale_price_cents,
    weight_grams = EXCLUDED.weight_grams
`
	_, err := pool.Exec(ctx, q, productID, v.SKU, v.RegularPriceCents, v.SalePriceCents, v.WeightGrams)
	return err
}

func upsertCoupon(ctx context.Context, pool *pgxpool.Pool, c couponSeed) error {
	const q = `
INSERT INTO coupons (code, discount_type, discount_value, minimum_spend_cents, maximum_spend_cents, free_shipping, expires_at, max_usage)
VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8)
ON CONFLICT (code) DO UPDATE
SET discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    minimum_spend_cents = EXCLUDED.minimum_spend_cents,
    maximum_spend_cents = EXCLUDED.maximum_spend_cents,
    free_shipping = EXCLUDED.free_shipping,
    expires_at = EXCLUDED.expires_at,
    max_usage = EXCLUDED.max_usage
`
	_, err := pool.Exec(ctx, q,
		c.Code, c.DiscountType, c.DiscountValue,
		c.MinimumSpendCents, c.MaximumSpendCents, c.FreeShipping, c.ExpiresAt, c.MaxUsage,
	)
	return err
}

func upsertAddress(ctx context.Context, pool *pgxpool.Pool, a addressSeed) error {
	const q = `
INSERT INTO addresses (id, owner_id, country, state, city, zip)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE
SET owner_id = EXCLUDED.owner_id,
    country = EXCLUDED.country,
    state = EXCLUDED.state,
    city = EXCLUDED.city,
    zip = EXCLUDED.zip
`
	_, err := pool.Exec(ctx, q, a.ID, a.OwnerID, a.Country, a.State, a.City, a.Zip)
	return err
}
