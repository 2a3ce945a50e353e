package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount modes.
type DiscountType string

const (
	// DiscountPercentage discounts a percentage of the item subtotal.
	DiscountPercentage DiscountType = "PERCENTAGE"
	// DiscountFixedCart discounts a flat amount off the whole cart.
	DiscountFixedCart DiscountType = "FIXED_CART"
)

type Coupon struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	DiscountType DiscountType `json:"discountType"`
	// DiscountValue is a percentage for PERCENTAGE coupons and a currency
	// amount (whole units, not cents) for FIXED_CART coupons.
	DiscountValue     decimal.Decimal `json:"discountValue"`
	MinimumSpendCents int64           `json:"minimumSpendCents,omitempty"`
	MaximumSpendCents int64           `json:"maximumSpendCents,omitempty"`
	FreeShipping      bool            `json:"freeShipping"`
	ExpiresAt         *time.Time      `json:"expiresAt,omitempty"`
	MaxUsage          int             `json:"maxUsage,omitempty"`
	UsageCount        int             `json:"usageCount"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Expired reports whether the coupon's expiry date has passed at the given
// instant. Coupons without an expiry never expire.
func (c Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// UsageExhausted reports whether the usage budget is spent. MaxUsage zero
// means unlimited.
func (c Coupon) UsageExhausted() bool {
	return c.MaxUsage > 0 && c.UsageCount >= c.MaxUsage
}
