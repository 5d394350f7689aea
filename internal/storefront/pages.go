// Package storefront composes the data each page needs on mount. Fetches
// for one view run concurrently and fail independently: a dead cart badge
// never blanks the product grid.
package storefront

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	branddomain "github.com/angelcloset/storefront/internal/brand/domain"
	cartdomain "github.com/angelcloset/storefront/internal/cart/domain"
	catalogapp "github.com/angelcloset/storefront/internal/catalog/app"
	catalogdomain "github.com/angelcloset/storefront/internal/catalog/domain"
	"github.com/angelcloset/storefront/internal/search"
)

type BrandDirectory interface {
	List(ctx context.Context) ([]branddomain.Brand, error)
	Name(ctx context.Context, id int64) (string, error)
	About(ctx context.Context, brandID int64) (branddomain.AboutPage, error)
	Branches(ctx context.Context, brandID int64) ([]branddomain.Branch, error)
}

type Cart interface {
	Items(ctx context.Context) ([]cartdomain.CartItem, error)
	Count(ctx context.Context) (int, error)
}

type Catalog interface {
	Query(ctx context.Context, f catalogapp.Filter) ([]catalogdomain.Product, error)
}

type Pages struct {
	catalog Catalog
	brands  BrandDirectory
	cart    Cart
	history *search.History
	log     *slog.Logger
}

func NewPages(catalog Catalog, brands BrandDirectory, cart Cart, history *search.History, log *slog.Logger) *Pages {
	if log == nil {
		log = slog.Default()
	}
	return &Pages{catalog: catalog, brands: brands, cart: cart, history: history, log: log}
}

// HomeView is the home page after mount. Each part carries its own error;
// partial completion is a normal state.
type HomeView struct {
	Products  []catalogdomain.Product
	Brands    []branddomain.Brand
	CartCount int

	ProductsErr error
	BrandsErr   error
	CartErr     error
}

// Home loads new arrivals, the brand slider data and the header badge
// concurrently.
func (p *Pages) Home(ctx context.Context, category catalogdomain.Category) HomeView {
	var view HomeView

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Products, view.ProductsErr = p.catalog.Query(ctx, catalogapp.Filter{
			Category: category,
			NewOnly:  true,
		})
		return nil
	})
	g.Go(func() error {
		view.Brands, view.BrandsErr = p.brands.List(ctx)
		return nil
	})
	g.Go(func() error {
		view.CartCount, view.CartErr = p.cart.Count(ctx)
		return nil
	})
	g.Wait()

	if view.ProductsErr != nil {
		p.log.Warn("home products failed", slog.Any("err", view.ProductsErr))
	}
	if view.BrandsErr != nil {
		p.log.Warn("brand list failed", slog.Any("err", view.BrandsErr))
	}
	if view.CartErr != nil {
		p.log.Warn("cart count failed", slog.Any("err", view.CartErr))
	}
	return view
}

// BrandView is a brand page: its products plus the resolved brand name.
type BrandView struct {
	Name     string
	Products []catalogdomain.Product

	NameErr     error
	ProductsErr error
}

// Brand loads a brand's products and name concurrently.
func (p *Pages) Brand(ctx context.Context, brandID int64, sort catalogdomain.SortOrder) BrandView {
	var view BrandView

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Products, view.ProductsErr = p.catalog.Query(ctx, catalogapp.Filter{
			BrandID: brandID,
			Sort:    sort,
		})
		return nil
	})
	g.Go(func() error {
		view.Name, view.NameErr = p.brands.Name(ctx, brandID)
		return nil
	})
	g.Wait()
	return view
}

// Search records the query in the history, then fetches matches.
func (p *Pages) Search(ctx context.Context, query string, sort catalogdomain.SortOrder) ([]catalogdomain.Product, error) {
	if err := p.history.Record(query); err != nil {
		// history is cosmetic; the search result matters more
		p.log.Warn("search history not persisted", slog.Any("err", err))
	}
	return p.catalog.Query(ctx, catalogapp.Filter{SearchText: query, Sort: sort})
}

// CartView is the cart page: items and the recomputed total.
type CartView struct {
	Items []cartdomain.CartItem
	Total decimal.Decimal
}

func (p *Pages) Cart(ctx context.Context) (CartView, error) {
	items, err := p.cart.Items(ctx)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Total: cartdomain.Total(items)}, nil
}
