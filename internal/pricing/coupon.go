package pricing

import (
	"time"

	"github.com/go-faster/errors"

	"shopcart/internal/domain"
)

// maxCoupons bounds how many attached coupons one calculation will process.
const maxCoupons = 20

// CouponEngine validates a cart's attached coupons and applies them against
// the item subtotal. Any invalid coupon fails the whole stage; partial
// discounts are never reported.
type CouponEngine struct {
	now func() time.Time
}

func NewCouponEngine() *CouponEngine {
	return &CouponEngine{now: time.Now}
}

// CouponResult reports the accumulated discount and the per-coupon breakdown.
// The applied amounts always sum to DiscountCents.
type CouponResult struct {
	DiscountCents int64
	Applied       []domain.AppliedCoupon
}

func (e *CouponEngine) Apply(coupons []domain.Coupon, subtotalCents int64) (*CouponResult, error) {
	if len(coupons) > maxCoupons {
		return nil, errors.Errorf("cart has %d coupons, limit is %d", len(coupons), maxCoupons)
	}

	res := &CouponResult{Applied: make([]domain.AppliedCoupon, 0, len(coupons))}
	for _, c := range coupons {
		if err := validateCoupon(c, e.now()); err != nil {
			return nil, errors.Wrapf(err, "coupon %s", c.Code)
		}

		amount := rawDiscountCents(c, subtotalCents)
		if c.MinimumSpendCents > 0 && subtotalCents < c.MinimumSpendCents {
			amount = 0
		}
		if c.MaximumSpendCents > 0 && amount > c.MaximumSpendCents {
			amount = c.MaximumSpendCents
		}
		// The cart can never be discounted below zero.
		if remaining := subtotalCents - res.DiscountCents; amount > remaining {
			amount = remaining
		}

		res.DiscountCents += amount
		res.Applied = append(res.Applied, domain.AppliedCoupon{
			ID:            c.ID,
			Code:          c.Code,
			DiscountType:  c.DiscountType,
			DiscountValue: c.DiscountValue,
			AmountCents:   amount,
			FreeShipping:  c.FreeShipping,
		})
	}
	return res, nil
}

func validateCoupon(c domain.Coupon, now time.Time) error {
	switch c.DiscountType {
	case domain.DiscountPercentage, domain.DiscountFixedCart:
	default:
		return errors.Errorf("unsupported discount type %q", c.DiscountType)
	}
	if c.DiscountValue.IsNegative() {
		return errors.New("negative discount value")
	}
	if c.MinimumSpendCents > 0 && c.MaximumSpendCents > 0 && c.MaximumSpendCents < c.MinimumSpendCents {
		return errors.New("maximum spend below minimum spend")
	}
	if c.Expired(now) {
		return errors.New("expired")
	}
	if c.UsageExhausted() {
		return errors.New("usage limit reached")
	}
	return nil
}

func rawDiscountCents(c domain.Coupon, subtotalCents int64) int64 {
	switch c.DiscountType {
	case domain.DiscountPercentage:
		return percentCents(subtotalCents, c.DiscountValue)
	default:
		return toCents(c.DiscountValue)
	}
}
