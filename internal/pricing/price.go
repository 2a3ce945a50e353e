package pricing

import "shopcart/internal/domain"

// EffectiveUnitPriceCents resolves the price a line is charged at. A sale
// price only takes effect when it is positive, and a variation's prices
// shadow the product's whenever the variation carries any.
func EffectiveUnitPriceCents(p domain.Product, v *domain.ProductVariation) int64 {
	if v != nil {
		if v.SalePriceCents > 0 {
			return v.SalePriceCents
		}
		if v.RegularPriceCents > 0 {
			return v.RegularPriceCents
		}
	}
	if p.SalePriceCents > 0 {
		return p.SalePriceCents
	}
	return p.RegularPriceCents
}

// effectiveSKU prefers the variation SKU when set.
func effectiveSKU(p domain.Product, v *domain.ProductVariation) string {
	if v != nil && v.SKU != "" {
		return v.SKU
	}
	return p.SKU
}

// effectiveDeliveryTypes prefers the variation's flags when it declares any.
func effectiveDeliveryTypes(p domain.Product, v *domain.ProductVariation) []string {
	if v != nil && len(v.DeliveryTypes) > 0 {
		return v.DeliveryTypes
	}
	return p.DeliveryTypes
}

func effectiveWeightGrams(p domain.Product, v *domain.ProductVariation) int {
	if v != nil && v.WeightGrams > 0 {
		return v.WeightGrams
	}
	return p.WeightGrams
}
