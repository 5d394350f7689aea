// Package session keeps the signed-in user's record. Who the user is comes
// from an external identity provider; this package only persists and serves
// the record for the current session.
package session

import (
	"github.com/google/uuid"

	"github.com/angelcloset/storefront/pkg/storage"
)

// Record is the persisted session user.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type Manager struct {
	store storage.Store[Record]
}

func NewManager(store storage.Store[Record]) *Manager {
	return &Manager{store: store}
}

// Current returns the session user. ok is false when nobody is signed in or
// the persisted record is unreadable.
func (m *Manager) Current() (Record, bool) {
	r := m.store.Load()
	if r.ID == "" {
		return Record{}, false
	}
	return r, true
}

// Login persists the record, assigning an id when the provider gave none.
func (m *Manager) Login(r Record) (Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := m.store.Save(r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Logout clears the persisted record.
func (m *Manager) Logout() error {
	return m.store.Clear()
}
