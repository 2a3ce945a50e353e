package cart

import (
	"context"

	"shopcart/internal/domain"
)

type Repository interface {
	// GetByUser loads the user's live cart with items, nested product and
	// variation data, and attached coupons.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// MergeItem creates the user's cart if absent and merges the referenced
	// line into it: overwrite quantity on an exact identity match, convert a
	// null-variation line in place when a variation is requested, otherwise
	// insert. Runs in one transaction; uniqueness races surface as
	// domain.ErrConflict.
	MergeItem(ctx context.Context, userID string, ref domain.ItemRef, quantity int) error
	// UpdateItemQuantity overwrites the quantity of the single live line for
	// the product. Zero or several matching lines yield domain.ErrNotFound.
	UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) error
	// RemoveItems deletes all lines whose product id is in the given set.
	RemoveItems(ctx context.Context, userID string, productIDs []string) error
	AttachCoupon(ctx context.Context, userID, couponID string) error
	DetachCoupon(ctx context.Context, userID, couponID string) error
}
