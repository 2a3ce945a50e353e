package wishlist

import (
	"context"

	"shopcart/internal/domain"
)

// Service handles wishlist mutations. Wishlist items have no quantity: the
// merge is existence-only and re-adding an identity silently no-ops.
type Service struct {
	wishlists wishlistRepo
	products  productRepo
}

type wishlistRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error)
	MergeItem(ctx context.Context, userID string, ref domain.ItemRef) error
	RemoveItem(ctx context.Context, userID string, ref domain.ItemRef) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetVariation(ctx context.Context, productID, variationID string) (*domain.ProductVariation, error)
}

func New(wishlists wishlistRepo, products productRepo) *Service {
	return &Service{wishlists: wishlists, products: products}
}

func (s *Service) Add(ctx context.Context, userID, productID string, variationID *string) (*domain.Wishlist, error) {
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

	if err := s.wishlists.MergeItem(ctx, userID, ref); err != nil {
		return nil, err
	}
	return s.wishlists.GetByUser(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, productID string, variationID *string) (*domain.Wishlist, error) {
	ref := domain.ItemRef{ProductID: productID, VariationID: variationID}
	if err := s.wishlists.RemoveItem(ctx, userID, ref); err != nil {
		return nil, err
	}
	return s.wishlists.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	return s.wishlists.GetByUser(ctx, userID)
}
