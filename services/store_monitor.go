package services

import (
	"log"

	"github.com/tabletaste/tabletaste-app/cart"
	"github.com/tabletaste/tabletaste-app/favorites"
	"github.com/tabletaste/tabletaste-app/livefeed"
	"github.com/tabletaste/tabletaste-app/store"
)

// StoreMonitor bridges key-value store change events onto the live feed.
// When the cart or favorites key changes (possibly written by another
// instance), the affected manager reloads and the fresh view is broadcast.
type StoreMonitor struct {
	Store     store.KeyValueStore
	Cart      *cart.Manager
	CartKey   string
	Favorites *favorites.Manager
	FavKey    string

	StopChan chan struct{}
	events   <-chan store.ChangeEvent
}

func NewStoreMonitor(kv store.KeyValueStore, cartMgr *cart.Manager, cartKey string, favMgr *favorites.Manager, favKey string) *StoreMonitor {
	return &StoreMonitor{
		Store:     kv,
		Cart:      cartMgr,
		CartKey:   cartKey,
		Favorites: favMgr,
		FavKey:    favKey,
		StopChan:  make(chan struct{}),
	}
}

func (sm *StoreMonitor) Start() {
	sm.events = sm.Store.Subscribe()
	go func() {
		for {
			select {
			case ev, ok := <-sm.events:
				if !ok {
					return
				}
				sm.handleChange(ev)
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *StoreMonitor) Stop() {
	close(sm.StopChan)
}

func (sm *StoreMonitor) handleChange(ev store.ChangeEvent) {
	log.Printf("store monitor: key %q changed", ev.Key)
	livefeed.BroadcastStoreChange(ev.Key)

	switch ev.Key {
	case sm.CartKey:
		if sm.Cart != nil {
			sm.Cart.Reload()
			livefeed.BroadcastCartUpdate(sm.Cart.Summary())
		}
	case sm.FavKey:
		if sm.Favorites != nil {
			sm.Favorites.Reload()
			livefeed.BroadcastFavoritesUpdate(sm.Favorites.List())
		}
	}
}
