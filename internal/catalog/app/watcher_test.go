package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/angelcloset/storefront/internal/catalog/domain"
)

// blockingSource parks every fetch until released, so tests can overlap
// requests deterministically.
type blockingSource struct {
	mu      sync.Mutex
	waiting []chan struct{}
}

func (b *blockingSource) park(ctx context.Context) error {
	ch := make(chan struct{})
	b.mu.Lock()
	b.waiting = append(b.waiting, ch)
	b.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *blockingSource) releaseAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.waiting {
		close(ch)
	}
	b.waiting = nil
}

func (b *blockingSource) All(ctx context.Context) ([]domain.Product, error) {
	if err := b.park(ctx); err != nil {
		return nil, err
	}
	return []domain.Product{{ID: 1}}, nil
}

func (b *blockingSource) ByCategory(ctx context.Context, c domain.Category) ([]domain.Product, error) {
	if err := b.park(ctx); err != nil {
		return nil, err
	}
	return []domain.Product{{ID: 2, Category: c}}, nil
}

func (b *blockingSource) ByBrand(ctx context.Context, brandID int64) ([]domain.Product, error) {
	return nil, nil
}

func (b *blockingSource) Search(ctx context.Context, text string) ([]domain.Product, error) {
	return nil, nil
}

func (b *blockingSource) Get(ctx context.Context, id int64) (domain.Product, error) {
	return domain.Product{}, ErrNotFound
}

func TestWatcherSupersededResultDiscarded(t *testing.T) {
	src := &blockingSource{}
	svc := NewService(src)

	results := make(chan Result, 4)
	w := NewWatcher(svc, func(r Result) { results <- r })
	defer w.Stop()

	ctx := context.Background()
	w.Set(ctx, Filter{})
	// wait for the first fetch to be in flight
	waitFor(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.waiting) == 1
	})

	w.Set(ctx, Filter{Category: domain.CategoryKids})
	waitFor(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.waiting) == 2
	})
	src.releaseAll()

	r := <-results
	if r.Filter.Category != domain.CategoryKids {
		t.Fatalf("delivered filter %+v, want the superseding one", r.Filter)
	}
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}

	select {
	case extra := <-results:
		t.Fatalf("superseded result delivered: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcherSlowDeliveryCannotClobberNewer(t *testing.T) {
	src := &blockingSource{}
	svc := NewService(src)

	var mu sync.Mutex
	var order []domain.Category
	staleEntered := make(chan struct{})
	releaseStale := make(chan struct{})

	w := NewWatcher(svc, func(r Result) {
		// park the default-filter delivery so a newer result could race it
		if r.Filter.Category == "" {
			close(staleEntered)
			<-releaseStale
		}
		mu.Lock()
		order = append(order, r.Filter.Category)
		mu.Unlock()
	})
	defer w.Stop()

	ctx := context.Background()
	w.Set(ctx, Filter{})
	waitFor(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.waiting) == 1
	})
	src.releaseAll()
	<-staleEntered

	// supersede while the first delivery is still in progress
	w.Set(ctx, Filter{Category: domain.CategoryKids})
	waitFor(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.waiting) == 1
	})
	src.releaseAll()

	close(releaseStale)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 2
	})

	mu.Lock()
	defer mu.Unlock()
	if order[len(order)-1] != domain.CategoryKids {
		t.Fatalf("delivery order %v, want the newer result last", order)
	}
}

func TestWatcherStopDiscardsInFlight(t *testing.T) {
	src := &blockingSource{}
	svc := NewService(src)

	results := make(chan Result, 1)
	w := NewWatcher(svc, func(r Result) { results <- r })

	w.Set(context.Background(), Filter{})
	waitFor(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.waiting) == 1
	})

	w.Stop()
	src.releaseAll()

	select {
	case r := <-results:
		t.Fatalf("result delivered after Stop: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
