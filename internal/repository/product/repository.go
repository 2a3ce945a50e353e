package product

import (
	"context"

	"shopcart/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetVariation resolves a variation and verifies it belongs to the
	// given product.
	GetVariation(ctx context.Context, productID, variationID string) (*domain.ProductVariation, error)
}
