package domain

import "time"

// Wishlist mirrors Cart without quantity semantics: an item is either
// present or not. It acts as a staging area that add-to-cart drains.
type Wishlist struct {
	ID        string         `json:"id"`
	CreatedBy string         `json:"createdBy"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt *time.Time     `json:"-"`
}

type WishlistItem struct {
	ID          string            `json:"id"`
	WishlistID  string            `json:"wishlistId"`
	ProductID   string            `json:"productId"`
	VariationID *string           `json:"variationId,omitempty"`
	Product     Product           `json:"product"`
	Variation   *ProductVariation `json:"variation,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
