// Package search holds the header search form's client-side state: the
// persisted history of recent queries and the visibility of its dropdown.
package search

import (
	"strings"

	"github.com/angelcloset/storefront/pkg/storage"
)

// MaxEntries caps the persisted history, most recent first.
const MaxEntries = 5

// History is a deduplicated, capped list of recent search queries backed by
// an injected store. Entries match case-sensitively.
type History struct {
	store storage.Store[[]string]
}

func NewHistory(store storage.Store[[]string]) *History {
	return &History{store: store}
}

// Record moves query to the front, or prepends it if absent, truncates to
// MaxEntries and persists the result. Blank queries are ignored.
func (h *History) Record(query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	entries := h.List()
	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, query)
	for _, e := range entries {
		if e != query {
			updated = append(updated, e)
		}
	}
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}
	return h.store.Save(updated)
}

// Remove deletes a single entry by exact match and persists the result.
func (h *History) Remove(query string) error {
	entries := h.List()
	updated := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != query {
			updated = append(updated, e)
		}
	}
	return h.store.Save(updated)
}

// List returns the persisted entries, most recent first. Missing or corrupt
// state comes back as an empty list, never an error.
func (h *History) List() []string {
	entries := h.store.Load()
	if entries == nil {
		return []string{}
	}
	return entries
}
