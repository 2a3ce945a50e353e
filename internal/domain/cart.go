package domain

import "time"

type Cart struct {
	ID        string     `json:"id"`
	CreatedBy string     `json:"createdBy"`
	Items     []CartItem `json:"items"`
	Coupons   []Coupon   `json:"coupons,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"-"`
}

type CartItem struct {
	ID          string            `json:"id"`
	CartID      string            `json:"cartId"`
	ProductID   string            `json:"productId"`
	VariationID *string           `json:"variationId,omitempty"`
	Quantity    int               `json:"quantity"`
	Product     Product           `json:"product"`
	Variation   *ProductVariation `json:"variation,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ItemRef is the identity key of a cart or wishlist line: a product plus an
// optional variation. Only valid foreign keys travel through it, never loose
// entity maps.
type ItemRef struct {
	ProductID   string
	VariationID *string
}

// Matches reports whether the reference points at the same identity as the
// given pair. Two nil variations match; nil never matches a concrete one.
func (r ItemRef) Matches(productID string, variationID *string) bool {
	if r.ProductID != productID {
		return false
	}
	if r.VariationID == nil || variationID == nil {
		return r.VariationID == nil && variationID == nil
	}
	return *r.VariationID == *variationID
}
