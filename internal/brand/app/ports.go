package app

import (
	"context"

	"github.com/angelcloset/storefront/internal/brand/domain"
)

type BrandSource interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id int64) (domain.Brand, error)
	About(ctx context.Context, brandID int64) (domain.AboutPage, error)
	Branches(ctx context.Context, brandID int64) ([]domain.Branch, error)
}
