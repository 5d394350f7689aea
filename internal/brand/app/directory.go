package app

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/angelcloset/storefront/internal/brand/domain"
)

var ErrNotFound = errors.New("not found")

// Directory serves the brand list to every consumer (selector dropdowns,
// the slider, brand-name lookups) from a single lazy fetch. Concurrent
// first loads collapse into one request; a failed load is not cached so the
// next call retries.
type Directory struct {
	source BrandSource
	group  singleflight.Group

	mu     sync.RWMutex
	brands []domain.Brand
	loaded bool
}

func NewDirectory(source BrandSource) *Directory {
	return &Directory{source: source}
}

// List returns the cached brand list, fetching it on first use. Callers
// get their own copy, so sorting or trimming the result cannot corrupt
// the shared cache.
func (d *Directory) List(ctx context.Context) ([]domain.Brand, error) {
	d.mu.RLock()
	if d.loaded {
		brands := make([]domain.Brand, len(d.brands))
		copy(brands, d.brands)
		d.mu.RUnlock()
		return brands, nil
	}
	d.mu.RUnlock()

	v, err, _ := d.group.Do("brands", func() (any, error) {
		brands, err := d.source.List(ctx)
		if err != nil {
			return nil, err
		}
		if brands == nil {
			brands = []domain.Brand{}
		}

		d.mu.Lock()
		d.brands = brands
		d.loaded = true
		d.mu.Unlock()
		return brands, nil
	})
	if err != nil {
		return nil, err
	}
	cached := v.([]domain.Brand)
	out := make([]domain.Brand, len(cached))
	copy(out, cached)
	return out, nil
}

// Name resolves a brand id to its display name via the cached list, falling
// back to the by-id endpoint when the id is not in the list yet.
func (d *Directory) Name(ctx context.Context, id int64) (string, error) {
	brands, err := d.List(ctx)
	if err != nil {
		return "", err
	}
	for _, b := range brands {
		if b.ID == id {
			return b.Name, nil
		}
	}

	b, err := d.source.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

// About fetches the brand's static info page. Not cached.
func (d *Directory) About(ctx context.Context, brandID int64) (domain.AboutPage, error) {
	return d.source.About(ctx, brandID)
}

// Branches fetches the brand's branch list. Not cached.
func (d *Directory) Branches(ctx context.Context, brandID int64) ([]domain.Branch, error) {
	branches, err := d.source.Branches(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if branches == nil {
		branches = []domain.Branch{}
	}
	return branches, nil
}
