package pricing

import "shopcart/internal/domain"

// ShippingResolver decides whether a cart needs shipping at all and selects
// the applicable method: free shipping once the post-discount subtotal
// reaches the threshold, flat rate otherwise.
type ShippingResolver struct {
	flatRateCents      int64
	freeThresholdCents int64
}

func NewShippingResolver(flatRateCents, freeThresholdCents int64) *ShippingResolver {
	return &ShippingResolver{flatRateCents: flatRateCents, freeThresholdCents: freeThresholdCents}
}

// NeedsShipping is true iff any line resolves to a physical good. Digital
// only carts skip shipping entirely.
func (r *ShippingResolver) NeedsShipping(lines []domain.LineCalculation) bool {
	for _, line := range lines {
		if line.Physical {
			return true
		}
	}
	return false
}

// Resolve produces the shipping quote for the given post-discount subtotal.
// FreeShippingRemainingCents tells the client how far the cart is from
// unlocking free shipping.
func (r *ShippingResolver) Resolve(lines []domain.LineCalculation, subtotalAfterDiscountCents int64) domain.ShippingQuote {
	if !r.NeedsShipping(lines) {
		return domain.ShippingQuote{Required: false}
	}

	if subtotalAfterDiscountCents >= r.freeThresholdCents {
		return domain.ShippingQuote{
			Required: true,
			Method:   domain.ShippingMethodFree,
			Label:    "Free shipping",
		}
	}
	return domain.ShippingQuote{
		Required:                   true,
		Method:                     domain.ShippingMethodFlatRate,
		Label:                      "Flat rate",
		CostCents:                  r.flatRateCents,
		FreeShippingRemainingCents: r.freeThresholdCents - subtotalAfterDiscountCents,
	}
}
