package app

import (
	"context"

	"github.com/angelcloset/storefront/internal/catalog/domain"
)

type ProductSource interface {
	All(ctx context.Context) ([]domain.Product, error)
	ByCategory(ctx context.Context, c domain.Category) ([]domain.Product, error)
	ByBrand(ctx context.Context, brandID int64) ([]domain.Product, error)
	Search(ctx context.Context, text string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
}
