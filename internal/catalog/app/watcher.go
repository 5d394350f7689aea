package app

import (
	"context"
	"sync"

	"github.com/angelcloset/storefront/internal/catalog/domain"
)

// Result is one delivered query outcome, tagged with the filter it answered.
type Result struct {
	Filter   Filter
	Products []domain.Product
	Err      error
}

// Watcher re-runs a catalog query whenever the filter changes. Setting a new
// filter cancels the in-flight request, and a result is delivered only if its
// filter is still the current one, so a superseded fetch can never clobber a
// newer view.
type Watcher struct {
	svc     *Service
	deliver func(Result)

	// deliverMu serializes deliveries; the generation is re-checked under
	// it so a stale result either sees itself superseded or finishes
	// delivering before the superseding one can start.
	deliverMu sync.Mutex

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewWatcher(svc *Service, deliver func(Result)) *Watcher {
	return &Watcher{svc: svc, deliver: deliver}
}

// Set replaces the current filter and starts a fetch for it.
func (w *Watcher) Set(ctx context.Context, f Filter) {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	qctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	go func() {
		defer cancel()
		products, err := w.svc.Query(qctx, f)

		w.deliverMu.Lock()
		defer w.deliverMu.Unlock()

		w.mu.Lock()
		current := w.gen == gen
		w.mu.Unlock()
		if !current {
			return
		}
		w.deliver(Result{Filter: f, Products: products, Err: err})
	}()
}

// Stop cancels any in-flight fetch and discards its result.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.gen++
}
