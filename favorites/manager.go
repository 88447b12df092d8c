package favorites

import (
	"fmt"
	"sync"

	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/store"
)

// DefaultStorageKey is the store key favorites persist under.
const DefaultStorageKey = "favorites"

// Manager keeps the favorited menu items, persisted as MenuItem-shaped
// payloads so the list renders without a catalog round-trip.
type Manager struct {
	mu       sync.Mutex
	store    store.KeyValueStore
	key      string
	notifier notify.Notifier
	items    []models.MenuItem
}

func NewManager(kv store.KeyValueStore, key string, notifier notify.Notifier) *Manager {
	if key == "" {
		key = DefaultStorageKey
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	m := &Manager{
		store:    kv,
		key:      key,
		notifier: notifier,
	}
	m.store.Read(m.key, &m.items)
	return m
}

// Toggle adds item to the favorites, or removes it if already present, and
// reports whether the item is a favorite afterwards.
func (m *Manager) Toggle(item models.MenuItem) bool {
	m.mu.Lock()
	removed := false
	kept := m.items[:0]
	for _, fav := range m.items {
		if fav.ID == item.ID {
			removed = true
			continue
		}
		kept = append(kept, fav)
	}
	m.items = kept
	if !removed {
		m.items = append(m.items, item)
	}
	m.persistLocked()
	m.mu.Unlock()

	if removed {
		m.notifier.Notify(notify.KindInfo, fmt.Sprintf("%s removed from favorites", item.Name))
		return false
	}
	m.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s added to favorites!", item.Name))
	return true
}

func (m *Manager) IsFavorite(id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, fav := range m.items {
		if fav.ID == id {
			return true
		}
	}
	return false
}

func (m *Manager) List() []models.MenuItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Reload re-reads the persisted favorites after an external write.
func (m *Manager) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []models.MenuItem
	if m.store.Read(m.key, &items) {
		m.items = items
	} else {
		m.items = nil
	}
}

func (m *Manager) persistLocked() {
	items := m.items
	if items == nil {
		items = []models.MenuItem{}
	}
	m.store.Write(m.key, items)
}
