package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	branddomain "github.com/angelcloset/storefront/internal/brand/domain"
	cartdomain "github.com/angelcloset/storefront/internal/cart/domain"
	catalogapp "github.com/angelcloset/storefront/internal/catalog/app"
	catalogdomain "github.com/angelcloset/storefront/internal/catalog/domain"
	"github.com/angelcloset/storefront/internal/search"
	"github.com/angelcloset/storefront/pkg/storage"
)

type stubCatalog struct {
	products []catalogdomain.Product
	err      error
	lastF    catalogapp.Filter
}

func (s *stubCatalog) Query(ctx context.Context, f catalogapp.Filter) ([]catalogdomain.Product, error) {
	s.lastF = f
	return s.products, s.err
}

type stubBrands struct {
	brands []branddomain.Brand
	name   string
	err    error
}

func (s *stubBrands) List(ctx context.Context) ([]branddomain.Brand, error) {
	return s.brands, s.err
}
func (s *stubBrands) Name(ctx context.Context, id int64) (string, error) { return s.name, s.err }
func (s *stubBrands) About(ctx context.Context, brandID int64) (branddomain.AboutPage, error) {
	return branddomain.AboutPage{}, s.err
}
func (s *stubBrands) Branches(ctx context.Context, brandID int64) ([]branddomain.Branch, error) {
	return nil, s.err
}

type stubCart struct {
	items []cartdomain.CartItem
	err   error
}

func (s *stubCart) Items(ctx context.Context) ([]cartdomain.CartItem, error) {
	return s.items, s.err
}

func (s *stubCart) Count(ctx context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return cartdomain.Count(s.items), nil
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newPages(cat *stubCatalog, br *stubBrands, crt *stubCart) (*Pages, *search.History) {
	hist := search.NewHistory(storage.NewMemStore[[]string]())
	return NewPages(cat, br, crt, hist, nil), hist
}

func TestHomePartialFailure(t *testing.T) {
	cat := &stubCatalog{err: errors.New("products down")}
	br := &stubBrands{brands: []branddomain.Brand{{ID: 1}}}
	crt := &stubCart{items: []cartdomain.CartItem{{CartID: 1, Quantity: 3}}}
	pages, _ := newPages(cat, br, crt)

	view := pages.Home(context.Background(), "")

	require.Error(t, view.ProductsErr)
	require.Empty(t, view.Products)

	// the other fetches are unaffected
	require.NoError(t, view.BrandsErr)
	require.Len(t, view.Brands, 1)
	require.NoError(t, view.CartErr)
	require.Equal(t, 3, view.CartCount)
}

func TestHomeQueriesNewArrivals(t *testing.T) {
	cat := &stubCatalog{}
	pages, _ := newPages(cat, &stubBrands{}, &stubCart{})

	pages.Home(context.Background(), catalogdomain.CategoryWomen)

	require.True(t, cat.lastF.NewOnly)
	require.Equal(t, catalogdomain.CategoryWomen, cat.lastF.Category)
}

func TestSearchRecordsHistory(t *testing.T) {
	cat := &stubCatalog{products: []catalogdomain.Product{{ID: 1}}}
	pages, hist := newPages(cat, &stubBrands{}, &stubCart{})

	got, err := pages.Search(context.Background(), "shoes", catalogdomain.SortPriceAsc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{"shoes"}, hist.List())
	require.Equal(t, "shoes", cat.lastF.SearchText)
}

func TestSearchFailureStillRecordsHistory(t *testing.T) {
	cat := &stubCatalog{err: errors.New("api down")}
	pages, hist := newPages(cat, &stubBrands{}, &stubCart{})

	_, err := pages.Search(context.Background(), "bag", "")
	require.Error(t, err)
	require.Equal(t, []string{"bag"}, hist.List())
}

func TestBrandPage(t *testing.T) {
	cat := &stubCatalog{products: []catalogdomain.Product{{ID: 1, BrandID: 7}}}
	br := &stubBrands{name: "Angel"}
	pages, _ := newPages(cat, br, &stubCart{})

	view := pages.Brand(context.Background(), 7, catalogdomain.SortPriceDesc)
	require.NoError(t, view.NameErr)
	require.NoError(t, view.ProductsErr)
	require.Equal(t, "Angel", view.Name)
	require.Equal(t, int64(7), cat.lastF.BrandID)
	require.Equal(t, catalogdomain.SortPriceDesc, cat.lastF.Sort)
}

func TestCartViewTotal(t *testing.T) {
	crt := &stubCart{items: []cartdomain.CartItem{
		{CartID: 1, Quantity: 2, Price: dec("59.50")},
		{CartID: 2, Quantity: 1, Price: dec("100")},
	}}
	pages, _ := newPages(&stubCatalog{}, &stubBrands{}, crt)

	view, err := pages.Cart(context.Background())
	require.NoError(t, err)
	require.True(t, view.Total.Equal(dec("219")), "got %s", view.Total)
}
