package pricing

import (
	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

// TaxAddressPolicy names which address governs tax for the whole store.
type TaxAddressPolicy string

const (
	TaxByBillingAddress  TaxAddressPolicy = "BILLING_ADDRESS"
	TaxByShippingAddress TaxAddressPolicy = "SHIPPING_ADDRESS"
	TaxByStoreAddress    TaxAddressPolicy = "STORE_ADDRESS"
)

// TaxCalculator computes tax on the post-discount taxable amount (items plus
// shipping) at a single flat rate. Without a resolvable tax address the tax
// is zero.
type TaxCalculator struct {
	ratePercent decimal.Decimal
	policy      TaxAddressPolicy
	store       *domain.AddressInfo
}

func NewTaxCalculator(ratePercent decimal.Decimal, policy TaxAddressPolicy, store *domain.AddressInfo) *TaxCalculator {
	return &TaxCalculator{ratePercent: ratePercent, policy: policy, store: store}
}

// ResolveAddress picks the governing address per the configured policy. The
// policy names exactly one source; there is no cross-policy fallback.
func (t *TaxCalculator) ResolveAddress(billing, shipping *domain.AddressInfo) *domain.AddressInfo {
	switch t.policy {
	case TaxByShippingAddress:
		return shipping
	case TaxByStoreAddress:
		return t.store
	default:
		return billing
	}
}

// Calculate computes taxableCents × rate / 100, rounded half-up at the cent,
// reported as a single named tax line.
func (t *TaxCalculator) Calculate(taxableCents int64, addr *domain.AddressInfo) domain.TaxQuote {
	if addr == nil || taxableCents <= 0 {
		return domain.TaxQuote{}
	}

	amount := percentCents(taxableCents, t.ratePercent)
	label := "Tax"
	if addr.Country != "" {
		label = "Tax (" + addr.Country + ")"
	}
	return domain.TaxQuote{
		TotalCents: amount,
		Lines: []domain.TaxLine{
			{Label: label, RatePercent: t.ratePercent, AmountCents: amount},
		},
	}
}
