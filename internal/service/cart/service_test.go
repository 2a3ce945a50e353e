package cart

import (
	"context"
	"errors"
	"testing"

	"shopcart/internal/domain"
)

type stubCartRepo struct {
	cart          *domain.Cart
	getErr        error
	mergeErrs     []error
	mergeCalls    []domain.ItemRef
	mergeQtys     []int
	updateErr     error
	lastUpdateID  string
	lastUpdateQty int
	removeErr     error
	lastRemoved   []string
	attachErr     error
	lastAttached  string
	detachErr     error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubCartRepo) MergeItem(_ context.Context, _ string, ref domain.ItemRef, quantity int) error {
	s.mergeCalls = append(s.mergeCalls, ref)
	s.mergeQtys = append(s.mergeQtys, quantity)
	if len(s.mergeErrs) == 0 {
		return nil
	}
	err := s.mergeErrs[0]
	s.mergeErrs = s.mergeErrs[1:]
	return err
}

func (s *stubCartRepo) UpdateItemQuantity(_ context.Context, _, productID string, quantity int) error {
	s.lastUpdateID = productID
	s.lastUpdateQty = quantity
	return s.updateErr
}

func (s *stubCartRepo) RemoveItems(_ context.Context, _ string, productIDs []string) error {
	s.lastRemoved = productIDs
	return s.removeErr
}

func (s *stubCartRepo) AttachCoupon(_ context.Context, _, couponID string) error {
	s.lastAttached = couponID
	return s.attachErr
}

func (s *stubCartRepo) DetachCoupon(_ context.Context, _, _ string) error {
	return s.detachErr
}

type stubWishlistRepo struct {
	removed []domain.ItemRef
	err     error
}

func (s *stubWishlistRepo) RemoveItem(_ context.Context, _ string, ref domain.ItemRef) error {
	s.removed = append(s.removed, ref)
	return s.err
}

type stubProductRepo struct {
	product      *domain.Product
	productErr   error
	variation    *domain.ProductVariation
	variationErr error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.productErr
}

func (s *stubProductRepo) GetVariation(_ context.Context, _, _ string) (*domain.ProductVariation, error) {
	return s.variation, s.variationErr
}

type stubCouponRepo struct {
	coupon *domain.Coupon
	err    error
}

func (s *stubCouponRepo) GetByCode(_ context.Context, _ string) (*domain.Coupon, error) {
	return s.coupon, s.err
}

type stubCalculator struct {
	result   *domain.CartCalculationResult
	err      error
	lastCart domain.Cart
}

func (s *stubCalculator) Calculate(_ context.Context, cart domain.Cart, _ string, _, _ *string) (*domain.CartCalculationResult, error) {
	s.lastCart = cart
	return s.result, s.err
}

func strPtr(v string) *string {
	return &v
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.AddToCart(context.Background(), "user", "p1", nil, 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, &stubProductRepo{productErr: domain.ErrNotFound}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.AddToCart(context.Background(), "user", "missing", nil, 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddToCartMergesAndDrainsWishlist(t *testing.T) {
	cart := &domain.Cart{ID: "cart1", CreatedBy: "user"}
	carts := &stubCartRepo{cart: cart}
	wishlists := &stubWishlistRepo{}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(carts, wishlists, products, &stubCouponRepo{}, &stubCalculator{}, nil)

	got, err := svc.AddToCart(context.Background(), "user", "p1", nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cart {
		t.Fatalf("expected reloaded cart, got %+v", got)
	}
	if len(carts.mergeCalls) != 1 || carts.mergeCalls[0].ProductID != "p1" || carts.mergeQtys[0] != 3 {
		t.Fatalf("merge not called as expected: %+v", carts.mergeCalls)
	}
	if len(wishlists.removed) != 1 || wishlists.removed[0].ProductID != "p1" {
		t.Fatalf("wishlist not drained: %+v", wishlists.removed)
	}
}

func TestAddToCartResolvesVariation(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "cart1"}}
	products := &stubProductRepo{
		product:   &domain.Product{ID: "p1"},
		variation: &domain.ProductVariation{ID: "v1", ProductID: "p1"},
	}
	svc := New(carts, &stubWishlistRepo{}, products, &stubCouponRepo{}, &stubCalculator{}, nil)

	_, err := svc.AddToCart(context.Background(), "user", "p1", strPtr("v1"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := carts.mergeCalls[0]
	if ref.VariationID == nil || *ref.VariationID != "v1" {
		t.Fatalf("expected variation in merge ref, got %+v", ref)
	}
}

func TestAddToCartUnknownVariation(t *testing.T) {
	products := &stubProductRepo{
		product:      &domain.Product{ID: "p1"},
		variationErr: domain.ErrNotFound,
	}
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, products, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.AddToCart(context.Background(), "user", "p1", strPtr("ghost"), 2)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddToCartRetriesOnConflict(t *testing.T) {
	carts := &stubCartRepo{
		cart:      &domain.Cart{ID: "cart1"},
		mergeErrs: []error{domain.ErrConflict, nil},
	}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(carts, &stubWishlistRepo{}, products, &stubCouponRepo{}, &stubCalculator{}, nil)

	_, err := svc.AddToCart(context.Background(), "user", "p1", nil, 1)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(carts.mergeCalls) != 2 {
		t.Fatalf("expected two merge attempts, got %d", len(carts.mergeCalls))
	}
}

func TestAddToCartGivesUpAfterSecondConflict(t *testing.T) {
	carts := &stubCartRepo{
		mergeErrs: []error{domain.ErrConflict, domain.ErrConflict},
	}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(carts, &stubWishlistRepo{}, products, &stubCouponRepo{}, &stubCalculator{}, nil)

	_, err := svc.AddToCart(context.Background(), "user", "p1", nil, 1)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict after retry, got %v", err)
	}
}

func TestUpdateItemValidationAndNotFound(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.UpdateItem(context.Background(), "user", "p1", -1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	svc = New(&stubCartRepo{updateErr: domain.ErrNotFound}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err = svc.UpdateItem(context.Background(), "user", "p1", 4)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "cart1"}}
	svc := New(carts, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.UpdateItem(context.Background(), "user", "p1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.lastUpdateID != "p1" || carts.lastUpdateQty != 7 {
		t.Fatalf("unexpected update args %s %d", carts.lastUpdateID, carts.lastUpdateQty)
	}
}

func TestRemoveItemsRequiresIDs(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.RemoveItems(context.Background(), "user", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveItemsByProductSet(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "cart1"}}
	svc := New(carts, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.RemoveItems(context.Background(), "user", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carts.lastRemoved) != 2 {
		t.Fatalf("unexpected removal set %+v", carts.lastRemoved)
	}
}

func TestAttachCouponUnknownCode(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{err: domain.ErrNotFound}, &stubCalculator{}, nil)
	_, err := svc.AttachCoupon(context.Background(), "user", "GHOST")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAttachCouponResolvesCodeToID(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "cart1"}}
	coupons := &stubCouponRepo{coupon: &domain.Coupon{ID: "c9", Code: "SAVE"}}
	svc := New(carts, &stubWishlistRepo{}, &stubProductRepo{}, coupons, &stubCalculator{}, nil)
	_, err := svc.AttachCoupon(context.Background(), "user", "SAVE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.lastAttached != "c9" {
		t.Fatalf("expected coupon id c9 attached, got %s", carts.lastAttached)
	}
}

func TestCalculateTotalsDelegates(t *testing.T) {
	cart := &domain.Cart{ID: "cart1", CreatedBy: "user"}
	expected := &domain.CartCalculationResult{TotalCents: 19530}
	calc := &stubCalculator{result: expected}
	svc := New(&stubCartRepo{cart: cart}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, calc, nil)

	got, err := svc.CalculateTotals(context.Background(), "user", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected result %+v", got)
	}
	if calc.lastCart.ID != "cart1" {
		t.Fatalf("calculator saw wrong cart %+v", calc.lastCart)
	}
}

func TestCalculateTotalsWithoutCart(t *testing.T) {
	svc := New(&stubCartRepo{getErr: domain.ErrNotFound}, &stubWishlistRepo{}, &stubProductRepo{}, &stubCouponRepo{}, &stubCalculator{}, nil)
	_, err := svc.CalculateTotals(context.Background(), "user", nil, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
