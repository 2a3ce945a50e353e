package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

func TestTaxCalculator_NoAddressMeansZeroTax(t *testing.T) {
	calc := NewTaxCalculator(decimal.NewFromFloat(8.5), TaxByBillingAddress, nil)
	quote := calc.Calculate(18000, nil)
	if quote.TotalCents != 0 || len(quote.Lines) != 0 {
		t.Fatalf("expected zero tax without address, got %+v", quote)
	}
}

func TestTaxCalculator_FlatRateWithBreakdown(t *testing.T) {
	calc := NewTaxCalculator(decimal.NewFromFloat(8.5), TaxByBillingAddress, nil)
	quote := calc.Calculate(18000, &domain.AddressInfo{Country: "US"})
	if quote.TotalCents != 1530 {
		t.Fatalf("expected tax 1530, got %d", quote.TotalCents)
	}
	if len(quote.Lines) != 1 || quote.Lines[0].AmountCents != 1530 {
		t.Fatalf("unexpected breakdown %+v", quote.Lines)
	}
	if quote.Lines[0].Label != "Tax (US)" {
		t.Fatalf("unexpected label %q", quote.Lines[0].Label)
	}
}

func TestTaxCalculator_RoundsHalfUpAtCent(t *testing.T) {
	// 10.01 × 7.5% = 0.75075 → 0.75; 10.10 × 7.5% = 0.7575 → 0.76.
	calc := NewTaxCalculator(decimal.NewFromFloat(7.5), TaxByBillingAddress, nil)
	addr := &domain.AddressInfo{Country: "US"}
	if got := calc.Calculate(1001, addr).TotalCents; got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	if got := calc.Calculate(1010, addr).TotalCents; got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestTaxCalculator_PolicySelectsAddress(t *testing.T) {
	billing := &domain.AddressInfo{ID: "b", Country: "US"}
	shipping := &domain.AddressInfo{ID: "s", Country: "DE"}
	store := &domain.AddressInfo{ID: "st", Country: "NL"}

	cases := []struct {
		policy TaxAddressPolicy
		want   string
	}{
		{TaxByBillingAddress, "b"},
		{TaxByShippingAddress, "s"},
		{TaxByStoreAddress, "st"},
	}
	for _, tc := range cases {
		calc := NewTaxCalculator(decimal.NewFromInt(10), tc.policy, store)
		got := calc.ResolveAddress(billing, shipping)
		if got == nil || got.ID != tc.want {
			t.Fatalf("policy %s: expected address %s, got %+v", tc.policy, tc.want, got)
		}
	}
}
