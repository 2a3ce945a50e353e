package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"shopcart/internal/domain"
)

// Service resolves cart mutations: merge-on-add semantics, quantity updates,
// removals, coupon attachment, and totals calculation. All identity matching
// is by (productId, variationId|null) within the user's single live cart.
type Service struct {
	carts     cartRepo
	wishlists wishlistRepo
	products  productRepo
	coupons   couponRepo
	pricing   calculator
	logger    *log.Logger
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	MergeItem(ctx context.Context, userID string, ref domain.ItemRef, quantity int) error
	UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItems(ctx context.Context, userID string, productIDs []string) error
	AttachCoupon(ctx context.Context, userID, couponID string) error
	DetachCoupon(ctx context.Context, userID, couponID string) error
}

type wishlistRepo interface {
	RemoveItem(ctx context.Context, userID string, ref domain.ItemRef) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetVariation(ctx context.Context, productID, variationID string) (*domain.ProductVariation, error)
}

type couponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type calculator interface {
	Calculate(ctx context.Context, cart domain.Cart, userID string, billingAddressID, shippingAddressID *string) (*domain.CartCalculationResult, error)
}

func New(carts cartRepo, wishlists wishlistRepo, products productRepo, coupons couponRepo, pricing calculator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, wishlists: wishlists, products: products, coupons: coupons, pricing: pricing, logger: logger}
}

// AddToCart merges the product (and optional variation) into the user's
// cart, creating the cart on first use. The quantity overwrites any existing
// line with the same identity. Adding to the cart also removes the same
// identity from the user's wishlist.
func (s *Service) AddToCart(ctx context.Context, userID, productID string, variationID *string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	ref := domain.ItemRef{ProductID: product.ID}
	if variationID != nil && *variationID != "" {
		variation, err := s.products.GetVariation(ctx, product.ID, *variationID)
		if err != nil {
			return nil, err
		}
		ref.VariationID = &variation.ID
	}

	if err := s.mergeWithRetry(ctx, userID, ref, quantity); err != nil {
		return nil, err
	}

	if err := s.wishlists.RemoveItem(ctx, userID, ref); err != nil {
		return nil, err
	}

	return s.carts.GetByUser(ctx, userID)
}

// mergeWithRetry retries the merge once when a storage-level uniqueness race
// is detected; the second attempt sees the winner's row and converges.
func (s *Service) mergeWithRetry(ctx context.Context, userID string, ref domain.ItemRef, quantity int) error {
	err := s.carts.MergeItem(ctx, userID, ref, quantity)
	if errors.Is(err, domain.ErrConflict) {
		s.logger.Printf("cart service: merge conflict user=%s product=%s, retrying", userID, ref.ProductID)
		err = s.carts.MergeItem(ctx, userID, ref, quantity)
	}
	return err
}

// UpdateItem overwrites the quantity of the single live line holding the
// product. Lines are addressed by product only; see the repository contract
// for the multi-variation case.
func (s *Service) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if err := s.carts.UpdateItemQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, userID)
}

// RemoveItems removes every line whose product id is in the given set.
func (s *Service) RemoveItems(ctx context.Context, userID string, productIDs []string) (*domain.Cart, error) {
	if len(productIDs) == 0 {
		return nil, fmt.Errorf("%w: product ids required", domain.ErrValidation)
	}
	if err := s.carts.RemoveItems(ctx, userID, productIDs); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.carts.GetByUser(ctx, userID)
}

// AttachCoupon attaches the coupon with the given code to the user's cart.
// Only existence is checked here; validity is judged at calculation time.
func (s *Service) AttachCoupon(ctx context.Context, userID, code string) (*domain.Cart, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.carts.AttachCoupon(ctx, userID, coupon.ID); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, userID)
}

func (s *Service) DetachCoupon(ctx context.Context, userID, code string) (*domain.Cart, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.carts.DetachCoupon(ctx, userID, coupon.ID); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, userID)
}

// CalculateTotals loads the user's cart and produces the pricing quote. The
// calculation is read-only: it never mutates cart state.
func (s *Service) CalculateTotals(ctx context.Context, userID string, billingAddressID, shippingAddressID *string) (*domain.CartCalculationResult, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.pricing.Calculate(ctx, *cart, userID, billingAddressID, shippingAddressID)
}
