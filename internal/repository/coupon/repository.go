package coupon

import (
	"context"

	"shopcart/internal/domain"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}
