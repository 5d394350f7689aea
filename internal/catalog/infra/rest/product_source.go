package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelcloset/storefront/internal/catalog/app"
	"github.com/angelcloset/storefront/internal/catalog/domain"
	"github.com/angelcloset/storefront/pkg/httpx"
)

type ProductSource struct {
	client *httpx.Client
}

func NewProductSource(client *httpx.Client) *ProductSource {
	return &ProductSource{client: client}
}

// productDTO mirrors the wire shape of a catalog product.
type productDTO struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	ImgSrc      string          `json:"imgsrc"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BrandID     int64           `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	IsNew       bool            `json:"isnew"`
	CreateDate  time.Time       `json:"createdate"`
}

func (d productDTO) toDomain() domain.Product {
	cat := domain.Category(d.Category)
	if !cat.Valid() {
		cat = domain.CategoryOther
	}
	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price,
		Category:    cat,
		BrandID:     d.BrandID,
		ImageURL:    d.ImgSrc,
		IsNew:       d.IsNew,
		Description: d.Description,
		DateAdded:   d.CreateDate,
	}
}

func (s *ProductSource) All(ctx context.Context) ([]domain.Product, error) {
	return s.list(ctx, "/api/v1/products", nil)
}

func (s *ProductSource) ByCategory(ctx context.Context, c domain.Category) ([]domain.Product, error) {
	return s.list(ctx, "/api/v1/products/category/"+url.PathEscape(string(c)), nil)
}

func (s *ProductSource) ByBrand(ctx context.Context, brandID int64) ([]domain.Product, error) {
	return s.list(ctx, fmt.Sprintf("/api/v1/products/brand/%d", brandID), nil)
}

func (s *ProductSource) Search(ctx context.Context, text string) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("name", text)
	return s.list(ctx, "/api/v1/products/search", q)
}

func (s *ProductSource) Get(ctx context.Context, id int64) (domain.Product, error) {
	var dto productDTO
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/products/%d", id), nil, &dto)
	var se *httpx.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return dto.toDomain(), nil
}

func (s *ProductSource) list(ctx context.Context, path string, query url.Values) ([]domain.Product, error) {
	raw, err := s.client.GetRaw(ctx, path, query)
	if err != nil {
		return nil, err
	}

	dtos, err := normalize(raw)
	if err != nil {
		return nil, &httpx.DecodeError{URL: path, Err: err}
	}

	out := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// normalize accepts the two shapes the API is known to produce, a bare
// array or a wrapper with the list under "books", and rejects everything
// else. Consumers only ever see the flat list.
func normalize(raw json.RawMessage) ([]productDTO, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var dtos []productDTO
		if err := json.Unmarshal(trimmed, &dtos); err != nil {
			return nil, err
		}
		return dtos, nil
	case '{':
		var wrapper struct {
			Books *[]productDTO `json:"books"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, err
		}
		if wrapper.Books == nil {
			return nil, errors.New("object response without a product list")
		}
		return *wrapper.Books, nil
	case 'n': // null body stands for an empty catalog
		return nil, nil
	default:
		return nil, errors.New("unrecognized response shape")
	}
}
