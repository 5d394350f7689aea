package app

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/angelcloset/storefront/internal/cart/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// RefreshError reports that a mutation succeeded server-side but the
// follow-up snapshot refresh failed. The cart holds the change; the badge
// catches up on the next successful refresh.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string { return "cart refresh: " + e.Err.Error() }
func (e *RefreshError) Unwrap() error { return e.Err }

// Service owns the session cart. It keeps the last known item snapshot and
// publishes the derived count to subscribers, so the header badge and the
// cart page observe the same state after every mutation.
type Service struct {
	source CartSource

	mu     sync.Mutex
	items  []domain.CartItem
	subs   map[int]func(int)
	nextID int
}

func NewService(source CartSource) *Service {
	return &Service{
		source: source,
		subs:   map[int]func(int){},
	}
}

// Add creates or increments the item server-side, then refreshes the
// snapshot so subscribers see the new count. A failed add changes nothing
// local; a failed refresh after a successful add comes back as a
// RefreshError so callers don't report the add itself as failed.
func (s *Service) Add(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if err := s.source.Add(ctx, productID, quantity); err != nil {
		return err
	}

	if _, err := s.Items(ctx); err != nil {
		return &RefreshError{Err: err}
	}
	return nil
}

// Remove deletes the item server-side and updates the snapshot by filtering
// out the removed id, keeping the view responsive without a refetch.
func (s *Service) Remove(ctx context.Context, cartID int64) error {
	if err := s.source.Remove(ctx, cartID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	count := domain.Count(s.items)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, count)
	return nil
}

// Items fetches the cart and replaces the snapshot. The result is ordered
// as served and never nil.
func (s *Service) Items(ctx context.Context) ([]domain.CartItem, error) {
	items, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}

	s.mu.Lock()
	s.items = items
	count := domain.Count(items)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, count)

	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

// Count is the sum of quantities over a fresh fetch.
func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return domain.Count(items), nil
}

// Total recomputes the cart total from a fresh fetch.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.Total(items), nil
}

// Subscribe registers a count observer and returns its unsubscribe func.
// The observer fires after every successful mutation or refresh.
func (s *Service) Subscribe(fn func(count int)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) snapshotSubs() []func(int) {
	out := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(int), count int) {
	for _, fn := range subs {
		fn(count)
	}
}
