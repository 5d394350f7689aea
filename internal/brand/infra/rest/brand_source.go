package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/angelcloset/storefront/internal/brand/app"
	"github.com/angelcloset/storefront/internal/brand/domain"
	"github.com/angelcloset/storefront/pkg/httpx"
)

type BrandSource struct {
	client *httpx.Client
}

func NewBrandSource(client *httpx.Client) *BrandSource {
	return &BrandSource{client: client}
}

type brandDTO struct {
	ID        int64  `json:"id"`
	BrandName string `json:"brandname"`
	BrandLogo string `json:"brandlogo"`
}

type aboutDTO struct {
	BrandID     int64  `json:"brand_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

type branchDTO struct {
	ID       int64  `json:"id"`
	BrandID  int64  `json:"brand_id"`
	Name     string `json:"branch_name"`
	Location string `json:"location"`
	Province string `json:"province"`
}

func (s *BrandSource) List(ctx context.Context) ([]domain.Brand, error) {
	var dtos []brandDTO
	if err := s.client.Get(ctx, "/api/v1/brand", nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]domain.Brand, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.Brand{ID: d.ID, Name: d.BrandName, LogoURL: d.BrandLogo})
	}
	return out, nil
}

func (s *BrandSource) Get(ctx context.Context, id int64) (domain.Brand, error) {
	var dto brandDTO
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/brand/%d", id), nil, &dto)
	var se *httpx.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return domain.Brand{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Brand{}, err
	}
	return domain.Brand{ID: dto.ID, Name: dto.BrandName, LogoURL: dto.BrandLogo}, nil
}

func (s *BrandSource) About(ctx context.Context, brandID int64) (domain.AboutPage, error) {
	var dto aboutDTO
	if err := s.client.Get(ctx, fmt.Sprintf("/api/v1/about/%d", brandID), nil, &dto); err != nil {
		return domain.AboutPage{}, err
	}
	return domain.AboutPage{
		BrandID:     dto.BrandID,
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.Img,
	}, nil
}

func (s *BrandSource) Branches(ctx context.Context, brandID int64) ([]domain.Branch, error) {
	var dtos []branchDTO
	if err := s.client.Get(ctx, fmt.Sprintf("/api/v1/branches/brand/%d", brandID), nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]domain.Branch, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.Branch{
			ID:       d.ID,
			BrandID:  d.BrandID,
			Name:     d.Name,
			Location: d.Location,
			Province: d.Province,
		})
	}
	return out, nil
}
