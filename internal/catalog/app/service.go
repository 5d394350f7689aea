package app

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/angelcloset/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Filter selects and orders one catalog query. Category and SearchText are
// mutually exclusive; BrandID composes with either.
type Filter struct {
	Category   domain.Category
	BrandID    int64
	SearchText string
	Sort       domain.SortOrder
	NewOnly    bool
}

type Service struct {
	source ProductSource
}

func NewService(source ProductSource) *Service {
	return &Service{
		source: source,
	}
}

// Query fetches products for the filter and applies brand narrowing, the
// new-arrivals cut, and the requested sort on the client side. The result
// is never nil. Results are not cached; every call re-fetches.
func (s *Service) Query(ctx context.Context, f Filter) ([]domain.Product, error) {
	f.SearchText = strings.TrimSpace(f.SearchText)
	if err := validate(f); err != nil {
		return nil, err
	}

	products, err := s.fetch(ctx, f)
	if err != nil {
		return nil, err
	}

	// brand-only queries hit the brand endpoint, so the list is already narrowed
	narrowed := f.BrandID != 0 && f.Category == "" && f.SearchText == ""

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.BrandID != 0 && !narrowed && p.BrandID != f.BrandID {
			continue
		}
		if f.NewOnly && !p.IsNew {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.Sort)
	return out, nil
}

// Product fetches a single product by id for the detail view.
func (s *Service) Product(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.source.Get(ctx, id)
}

func (s *Service) fetch(ctx context.Context, f Filter) ([]domain.Product, error) {
	switch {
	case f.SearchText != "":
		return s.source.Search(ctx, f.SearchText)
	case f.Category != "":
		return s.source.ByCategory(ctx, f.Category)
	case f.BrandID != 0:
		return s.source.ByBrand(ctx, f.BrandID)
	default:
		return s.source.All(ctx)
	}
}

func validate(f Filter) error {
	if f.Category != "" && f.SearchText != "" {
		return ErrInvalidInput
	}
	if f.Category != "" && !f.Category.Valid() {
		return ErrInvalidInput
	}
	if f.Sort != "" && !f.Sort.Valid() {
		return ErrInvalidInput
	}
	if f.BrandID < 0 {
		return ErrInvalidInput
	}
	return nil
}

// sortProducts orders in place. Sorts are stable so ties keep input order.
func sortProducts(products []domain.Product, order domain.SortOrder) {
	switch order {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	default:
		// newest first
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DateAdded.After(products[j].DateAdded)
		})
	}
}
