package pricing

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

// Config carries every rate and threshold the pipeline needs. It is injected
// by the composition root; the engine holds no literals of its own.
type Config struct {
	TaxRatePercent             decimal.Decimal
	TaxBasedOn                 TaxAddressPolicy
	FlatRateCents              int64
	FreeShippingThresholdCents int64
	StoreAddress               *domain.AddressInfo
}

// AddressReader resolves billing/shipping addresses referenced by id.
type AddressReader interface {
	GetByID(ctx context.Context, id string) (*domain.AddressInfo, error)
}

// Aggregator runs the pricing stages in a fixed order and assembles the
// quote. The order is load-bearing: each stage consumes the previous stage's
// output (items → coupons → shipping → tax → total).
type Aggregator struct {
	addresses AddressReader
	items     *ItemPipeline
	coupons   *CouponEngine
	shipping  *ShippingResolver
	tax       *TaxCalculator
	logger    *log.Logger
	now       func() time.Time
	newID     func() string
}

func NewAggregator(cfg Config, addresses AddressReader, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Aggregator{
		addresses: addresses,
		items:     NewItemPipeline(cfg.TaxRatePercent),
		coupons:   NewCouponEngine(),
		shipping:  NewShippingResolver(cfg.FlatRateCents, cfg.FreeShippingThresholdCents),
		tax:       NewTaxCalculator(cfg.TaxRatePercent, cfg.TaxBasedOn, cfg.StoreAddress),
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Calculate produces the quote for a loaded cart snapshot. It never mutates
// cart state, and any stage failure surfaces as a single domain.ErrCalculation
// with no partial result.
func (a *Aggregator) Calculate(ctx context.Context, cart domain.Cart, userID string, billingAddressID, shippingAddressID *string) (*domain.CartCalculationResult, error) {
	billing, err := a.lookupAddress(ctx, billingAddressID)
	if err != nil {
		return nil, calcFailed(err, "resolve billing address")
	}
	shipping, err := a.lookupAddress(ctx, shippingAddressID)
	if err != nil {
		return nil, calcFailed(err, "resolve shipping address")
	}

	itemsRes, err := a.items.Expand(cart.Items)
	if err != nil {
		return nil, calcFailed(err, "item pricing")
	}

	couponRes, err := a.coupons.Apply(cart.Coupons, itemsRes.SubtotalCents)
	if err != nil {
		return nil, calcFailed(err, "coupons")
	}

	discounted := itemsRes.SubtotalCents - couponRes.DiscountCents
	shippingQuote := a.shipping.Resolve(itemsRes.Lines, discounted)

	taxAddr := a.tax.ResolveAddress(billing, shipping)
	taxQuote := a.tax.Calculate(discounted+shippingQuote.CostCents, taxAddr)

	total := discounted + shippingQuote.CostCents + taxQuote.TotalCents

	result := &domain.CartCalculationResult{
		CalculationID:    a.newID(),
		Items:            itemsRes.Lines,
		SubtotalCents:    itemsRes.SubtotalCents,
		SubtotalTaxCents: itemsRes.SubtotalTaxCents,
		DiscountCents:    couponRes.DiscountCents,
		Coupons:          couponRes.Applied,
		Shipping:         shippingQuote,
		Tax:              taxQuote,
		TotalCents:       total,
		NeedsShipping:    shippingQuote.Required,
		CanShipToAddress: !shippingQuote.Required || shipping != nil,
		CalculatedAt:     a.now(),
	}

	a.logger.Printf("pricing: user=%s cart=%s subtotal=%d discount=%d shipping=%d tax=%d total=%d",
		userID, cart.ID, result.SubtotalCents, result.DiscountCents, shippingQuote.CostCents, taxQuote.TotalCents, total)
	return result, nil
}

func (a *Aggregator) lookupAddress(ctx context.Context, id *string) (*domain.AddressInfo, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	return a.addresses.GetByID(ctx, *id)
}

func calcFailed(err error, stage string) error {
	return errors.Wrapf(domain.ErrCalculation, "%s: %s", stage, err)
}
