package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartCalculationResult is the authoritative quote for a cart snapshot. It is
// recomputed on every request, never persisted, and discarded after the
// response is sent.
type CartCalculationResult struct {
	CalculationID    string            `json:"calculationId"`
	Items            []LineCalculation `json:"items"`
	SubtotalCents    int64             `json:"subtotalCents"`
	SubtotalTaxCents int64             `json:"subtotalTaxCents"`
	DiscountCents    int64             `json:"discountCents"`
	Coupons          []AppliedCoupon   `json:"coupons"`
	Shipping         ShippingQuote     `json:"shipping"`
	Tax              TaxQuote          `json:"tax"`
	TotalCents       int64             `json:"totalCents"`
	NeedsShipping    bool              `json:"needsShipping"`
	CanShipToAddress bool              `json:"canShipToAddress"`
	CalculatedAt     time.Time         `json:"calculatedAt"`
}

// LineCalculation is the per-line expansion of a cart item: resolved unit
// price, line totals, and the product facts downstream stages need.
type LineCalculation struct {
	ProductID             string  `json:"productId"`
	VariationID           *string `json:"variationId,omitempty"`
	SKU                   string  `json:"sku,omitempty"`
	Name                  string  `json:"name"`
	Quantity              int     `json:"quantity"`
	UnitPriceCents        int64   `json:"unitPriceCents"`
	LineTotalCents        int64   `json:"lineTotalCents"`
	LineTaxCents          int64   `json:"lineTaxCents"`
	LineTotalWithTaxCents int64   `json:"lineTotalWithTaxCents"`
	TaxClass              string  `json:"taxClass,omitempty"`
	TaxStatus             string  `json:"taxStatus,omitempty"`
	ShippingClass         string  `json:"shippingClass,omitempty"`
	WeightGrams           int     `json:"weightGrams,omitempty"`
	Physical              bool    `json:"physical"`
}

// AppliedCoupon reports one coupon's contribution for client display.
type AppliedCoupon struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	AmountCents   int64           `json:"amountCents"`
	FreeShipping  bool            `json:"freeShipping"`
}

// Shipping method identifiers reported in the quote.
const (
	ShippingMethodFlatRate = "flat_rate"
	ShippingMethodFree     = "free_shipping"
)

type ShippingQuote struct {
	Required                   bool   `json:"required"`
	Method                     string `json:"method,omitempty"`
	Label                      string `json:"label,omitempty"`
	CostCents                  int64  `json:"costCents"`
	FreeShippingRemainingCents int64  `json:"freeShippingRemainingCents"`
}

type TaxQuote struct {
	TotalCents int64     `json:"totalCents"`
	Lines      []TaxLine `json:"lines,omitempty"`
}

type TaxLine struct {
	Label       string          `json:"label"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	AmountCents int64           `json:"amountCents"`
}
