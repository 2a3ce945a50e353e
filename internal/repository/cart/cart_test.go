package cart

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
	"shopcart/internal/migrate"
)

func TestPostgres_MergeConvergesAndPromotes(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	var productID, variationID string
	err := pool.QueryRow(ctx, `
INSERT INTO products (key, sku, name, regular_price_cents)
VALUES ('tee', 'SKU-TEE', 'Tee', 1999)
RETURNING id::text
`).Scan(&productID)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	err = pool.QueryRow(ctx, `
INSERT INTO product_variations (product_id, sku, regular_price_cents)
VALUES ($1, 'SKU-TEE-RED', 2199)
RETURNING id::text
`, productID).Scan(&variationID)
	if err != nil {
		t.Fatalf("insert variation: %v", err)
	}

	repo := NewPostgres(pool)
	user := "merge-user"

	// Same identity twice: quantities 2 then 5 converge to one line of 5.
	if err := repo.MergeItem(ctx, user, domain.ItemRef{ProductID: productID}, 2); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	if err := repo.MergeItem(ctx, user, domain.ItemRef{ProductID: productID}, 5); err != nil {
		t.Fatalf("second merge: %v", err)
	}
	cart, err := repo.GetByUser(ctx, user)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("expected one line with quantity 5, got %+v", cart.Items)
	}

	// Adding a variation promotes the null-variation line in place.
	if err := repo.MergeItem(ctx, user, domain.ItemRef{ProductID: productID, VariationID: &variationID}, 3); err != nil {
		t.Fatalf("variation merge: %v", err)
	}
	cart, err = repo.GetByUser(ctx, user)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected promotion, not a second line: %+v", cart.Items)
	}
	item := cart.Items[0]
	if item.VariationID == nil || *item.VariationID != variationID || item.Quantity != 3 {
		t.Fatalf("unexpected promoted line %+v", item)
	}
	if item.Variation == nil || item.Variation.RegularPriceCents != 2199 {
		t.Fatalf("expected nested variation data, got %+v", item.Variation)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `
TRUNCATE cart_coupons, cart_items, carts, wishlist_items, wishlists, coupons, addresses, product_variations, products
RESTART IDENTITY CASCADE
`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
