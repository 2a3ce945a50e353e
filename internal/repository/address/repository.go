package address

import (
	"context"

	"shopcart/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.AddressInfo, error)
}
