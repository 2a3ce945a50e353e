package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

// maxLines bounds the number of cart items a single calculation will expand,
// keeping calculation wall time finite for pathological carts.
const maxLines = 500

// ItemPipeline expands cart items into per-line calculations. Per-line tax
// uses the flat rate independently of the cart-level tax stage; the two are
// reported side by side, not reconciled.
type ItemPipeline struct {
	taxRatePercent decimal.Decimal
}

func NewItemPipeline(taxRatePercent decimal.Decimal) *ItemPipeline {
	return &ItemPipeline{taxRatePercent: taxRatePercent}
}

// ItemsResult carries the ordered line breakdown and its sums. SubtotalCents
// is the ex-tax sum that the coupon, shipping, and tax stages consume;
// SubtotalTaxCents is the informational sum of the per-line tax.
type ItemsResult struct {
	Lines            []domain.LineCalculation
	SubtotalCents    int64
	SubtotalTaxCents int64
}

func (p *ItemPipeline) Expand(items []domain.CartItem) (*ItemsResult, error) {
	if len(items) > maxLines {
		return nil, errors.Errorf("cart has %d items, limit is %d", len(items), maxLines)
	}

	res := &ItemsResult{Lines: make([]domain.LineCalculation, 0, len(items))}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errors.Errorf("item %s: quantity must be positive", item.ProductID)
		}
		unit := EffectiveUnitPriceCents(item.Product, item.Variation)
		if unit <= 0 {
			return nil, errors.Errorf("item %s: no price data", item.ProductID)
		}

		lineTotal := unit * int64(item.Quantity)
		lineTax := percentCents(lineTotal, p.taxRatePercent)
		types := effectiveDeliveryTypes(item.Product, item.Variation)

		res.Lines = append(res.Lines, domain.LineCalculation{
			ProductID:             item.ProductID,
			VariationID:           item.VariationID,
			SKU:                   effectiveSKU(item.Product, item.Variation),
			Name:                  item.Product.Name,
			Quantity:              item.Quantity,
			UnitPriceCents:        unit,
			LineTotalCents:        lineTotal,
			LineTaxCents:          lineTax,
			LineTotalWithTaxCents: lineTotal + lineTax,
			TaxClass:              item.Product.TaxClass,
			TaxStatus:             item.Product.TaxStatus,
			ShippingClass:         item.Product.ShippingClass,
			WeightGrams:           effectiveWeightGrams(item.Product, item.Variation),
			Physical:              domain.HasDeliveryType(types, domain.DeliveryTypePhysical),
		})
		res.SubtotalCents += lineTotal
		res.SubtotalTaxCents += lineTax
	}
	return res, nil
}
