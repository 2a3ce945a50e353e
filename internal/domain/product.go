package domain

import "time"

// Delivery type flags carried by products and variations. A cart needs
// shipping only when at least one line resolves to a physical good.
const (
	DeliveryTypePhysical = "physical"
	DeliveryTypeDigital  = "digital"
)

type Product struct {
	ID                string    `json:"id"`
	Key               string    `json:"key"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	RegularPriceCents int64     `json:"regularPriceCents"`
	SalePriceCents    int64     `json:"salePriceCents,omitempty"`
	TaxClass          string    `json:"taxClass,omitempty"`
	TaxStatus         string    `json:"taxStatus,omitempty"`
	ShippingClass     string    `json:"shippingClass,omitempty"`
	DeliveryTypes     []string  `json:"deliveryTypes,omitempty"`
	WeightGrams       int       `json:"weightGrams,omitempty"`
	LengthMM          int       `json:"lengthMm,omitempty"`
	WidthMM           int       `json:"widthMm,omitempty"`
	HeightMM          int       `json:"heightMm,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ProductVariation is a concrete SKU of a configurable product. Zero-valued
// price and delivery fields mean "inherit from the product".
type ProductVariation struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	SKU               string    `json:"sku"`
	RegularPriceCents int64     `json:"regularPriceCents,omitempty"`
	SalePriceCents    int64     `json:"salePriceCents,omitempty"`
	DeliveryTypes     []string  `json:"deliveryTypes,omitempty"`
	WeightGrams       int       `json:"weightGrams,omitempty"`
	LengthMM          int       `json:"lengthMm,omitempty"`
	WidthMM           int       `json:"widthMm,omitempty"`
	HeightMM          int       `json:"heightMm,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// HasDeliveryType reports whether the flag is present in the given set.
func HasDeliveryType(types []string, flag string) bool {
	for _, t := range types {
		if t == flag {
			return true
		}
	}
	return false
}
