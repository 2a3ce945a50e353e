package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

func fixedEngine(now time.Time) *CouponEngine {
	return &CouponEngine{now: func() time.Time { return now }}
}

func TestCouponEngine_PercentageClampedToMaximumSpend(t *testing.T) {
	// 50% of $40 is $20, capped at the $15 maximum spend.
	engine := fixedEngine(time.Now())
	res, err := engine.Apply([]domain.Coupon{{
		ID:                "c1",
		Code:              "HALF",
		DiscountType:      domain.DiscountPercentage,
		DiscountValue:     decimal.NewFromInt(50),
		MaximumSpendCents: 1500,
	}}, 4000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DiscountCents != 1500 {
		t.Fatalf("expected discount 1500, got %d", res.DiscountCents)
	}
	if len(res.Applied) != 1 || res.Applied[0].AmountCents != 1500 {
		t.Fatalf("unexpected breakdown %+v", res.Applied)
	}
}

func TestCouponEngine_MinimumSpendZeroesDiscount(t *testing.T) {
	engine := fixedEngine(time.Now())
	res, err := engine.Apply([]domain.Coupon{{
		Code:              "BIGCART",
		DiscountType:      domain.DiscountFixedCart,
		DiscountValue:     decimal.NewFromInt(10),
		MinimumSpendCents: 5000,
	}}, 4999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DiscountCents != 0 {
		t.Fatalf("expected zero discount below minimum spend, got %d", res.DiscountCents)
	}
	if res.Applied[0].AmountCents != 0 {
		t.Fatalf("coupon should still be reported with zero amount: %+v", res.Applied)
	}
}

func TestCouponEngine_TotalCappedAtSubtotal(t *testing.T) {
	engine := fixedEngine(time.Now())
	fixed := domain.Coupon{
		DiscountType:  domain.DiscountFixedCart,
		DiscountValue: decimal.NewFromInt(30),
	}
	res, err := engine.Apply([]domain.Coupon{fixed, fixed}, 4000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DiscountCents != 4000 {
		t.Fatalf("expected discount capped at subtotal 4000, got %d", res.DiscountCents)
	}
	if res.Applied[0].AmountCents != 3000 || res.Applied[1].AmountCents != 1000 {
		t.Fatalf("expected per-coupon amounts to sum to the cap: %+v", res.Applied)
	}
}

func TestCouponEngine_RejectsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	engine := fixedEngine(now)
	_, err := engine.Apply([]domain.Coupon{{
		Code:          "OLD",
		DiscountType:  domain.DiscountFixedCart,
		DiscountValue: decimal.NewFromInt(5),
		ExpiresAt:     &expired,
	}}, 10000)
	if err == nil {
		t.Fatalf("expected expired coupon to be rejected")
	}
}

func TestCouponEngine_RejectsExhaustedUsage(t *testing.T) {
	engine := fixedEngine(time.Now())
	_, err := engine.Apply([]domain.Coupon{{
		Code:          "USED",
		DiscountType:  domain.DiscountFixedCart,
		DiscountValue: decimal.NewFromInt(5),
		MaxUsage:      3,
		UsageCount:    3,
	}}, 10000)
	if err == nil {
		t.Fatalf("expected exhausted coupon to be rejected")
	}
}

func TestCouponEngine_RejectsMalformedSpendRule(t *testing.T) {
	engine := fixedEngine(time.Now())
	_, err := engine.Apply([]domain.Coupon{{
		Code:              "BROKEN",
		DiscountType:      domain.DiscountFixedCart,
		DiscountValue:     decimal.NewFromInt(5),
		MinimumSpendCents: 2000,
		MaximumSpendCents: 1000,
	}}, 10000)
	if err == nil {
		t.Fatalf("expected malformed spend rule to be rejected")
	}
}

func TestCouponEngine_FreeShippingFlagSurfaced(t *testing.T) {
	engine := fixedEngine(time.Now())
	res, err := engine.Apply([]domain.Coupon{{
		Code:          "SHIPFREE",
		DiscountType:  domain.DiscountFixedCart,
		DiscountValue: decimal.NewFromInt(1),
		FreeShipping:  true,
	}}, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Applied[0].FreeShipping {
		t.Fatalf("expected freeShipping flag in breakdown")
	}
}
