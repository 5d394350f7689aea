package app

import (
	"context"

	"github.com/angelcloset/storefront/internal/cart/domain"
)

type CartSource interface {
	List(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, productID int64, quantity int) error
	Remove(ctx context.Context, cartID int64) error
}
