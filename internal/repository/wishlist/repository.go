package wishlist

import (
	"context"

	"shopcart/internal/domain"
)

type Repository interface {
	// GetByUser loads the user's live wishlist with items and nested
	// product/variation data.
	GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error)
	// MergeItem creates the wishlist if absent and inserts the referenced
	// item; it silently no-ops when the identity is already present.
	MergeItem(ctx context.Context, userID string, ref domain.ItemRef) error
	// RemoveItem deletes the item with the given identity. Absence is not an
	// error: add-to-cart drains the wishlist opportunistically.
	RemoveItem(ctx context.Context, userID string, ref domain.ItemRef) error
}
