package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/store"
)

type recordingNotifier struct {
	kinds    []string
	messages []string
}

func (r *recordingNotifier) Notify(kind, message string) {
	r.kinds = append(r.kinds, kind)
	r.messages = append(r.messages, message)
}

func scallops() models.MenuItem {
	return models.MenuItem{ID: 2, Name: "Seared Scallops", Price: 24, Category: "appetizers"}
}

func souffle() models.MenuItem {
	return models.MenuItem{ID: 8, Name: "Chocolate Soufflé", Price: 16, Category: "desserts"}
}

func TestToggleAddsThenRemoves(t *testing.T) {
	n := &recordingNotifier{}
	m := NewManager(store.NewMemoryStore(), "", n)

	assert.True(t, m.Toggle(scallops()))
	assert.True(t, m.IsFavorite(2))
	assert.Equal(t, []string{notify.KindSuccess}, n.kinds)
	assert.Equal(t, "Seared Scallops added to favorites!", n.messages[0])

	assert.False(t, m.Toggle(scallops()))
	assert.False(t, m.IsFavorite(2))
	assert.Empty(t, m.List())
	assert.Equal(t, notify.KindInfo, n.kinds[1])
}

func TestListPreservesToggleOrder(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), "", nil)

	m.Toggle(scallops())
	m.Toggle(souffle())

	list := m.List()
	assert.Len(t, list, 2)
	assert.Equal(t, uint(2), list[0].ID)
	assert.Equal(t, uint(8), list[1].ID)
}

func TestFavoritesRoundTripThroughStore(t *testing.T) {
	kv := store.NewMemoryStore()

	first := NewManager(kv, "favorites", nil)
	first.Toggle(scallops())

	second := NewManager(kv, "favorites", nil)
	assert.True(t, second.IsFavorite(2))
	assert.Len(t, second.List(), 1)
}

func TestReloadDropsStaleState(t *testing.T) {
	kv := store.NewMemoryStore()
	m := NewManager(kv, "favorites", nil)
	m.Toggle(scallops())

	kv.Clear("favorites")
	m.Reload()

	assert.Empty(t, m.List())
	assert.False(t, m.IsFavorite(2))
}

func TestDefaultStorageKey(t *testing.T) {
	kv := store.NewMemoryStore()
	m := NewManager(kv, "", nil)
	m.Toggle(souffle())

	var persisted []models.MenuItem
	assert.True(t, kv.Read(DefaultStorageKey, &persisted))
	assert.Len(t, persisted, 1)
}
