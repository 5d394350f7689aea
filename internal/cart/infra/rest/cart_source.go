package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelcloset/storefront/internal/cart/domain"
	"github.com/angelcloset/storefront/pkg/httpx"
)

type CartSource struct {
	client *httpx.Client
}

func NewCartSource(client *httpx.Client) *CartSource {
	return &CartSource{client: client}
}

type cartItemDTO struct {
	CartID    int64           `json:"cart_id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	ImgSrc    string          `json:"imgsrc"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type addRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (s *CartSource) List(ctx context.Context) ([]domain.CartItem, error) {
	// the API serves null for an empty cart
	var dtos []cartItemDTO
	if err := s.client.Get(ctx, "/api/v1/cart", nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, domain.CartItem{
			CartID:    d.CartID,
			ProductID: d.ProductID,
			Name:      d.Name,
			ImageURL:  d.ImgSrc,
			Quantity:  d.Quantity,
			Price:     d.Price,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	return items, nil
}

func (s *CartSource) Add(ctx context.Context, productID int64, quantity int) error {
	return s.client.Post(ctx, "/api/v1/cart", addRequest{ProductID: productID, Quantity: quantity}, nil)
}

func (s *CartSource) Remove(ctx context.Context, cartID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/v1/cart/%d", cartID))
}
