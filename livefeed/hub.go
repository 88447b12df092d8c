package livefeed

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed over the feed.
const (
	EventCartUpdate        = "cart_update"
	EventFavoritesUpdate   = "favorites_update"
	EventReservationUpdate = "reservation_update"
	EventNotification      = "notification"
	EventStoreChange       = "store_change"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected feed client. Other browser tabs of the same
// session subscribe here to pick up cart and reservation changes without
// re-polling the API.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a connection to the set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// ClientCount reports the number of connected clients.
func ClientCount() int {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	return len(hub.clients)
}

// BroadcastCartUpdate pushes the fresh cart summary to every client.
func BroadcastCartUpdate(data interface{}) {
	broadcast(Message{Event: EventCartUpdate, Data: data})
}

// BroadcastFavoritesUpdate pushes the fresh favorites list.
func BroadcastFavoritesUpdate(data interface{}) {
	broadcast(Message{Event: EventFavoritesUpdate, Data: data})
}

// BroadcastReservationUpdate pushes a reservation workflow change.
func BroadcastReservationUpdate(data interface{}) {
	broadcast(Message{Event: EventReservationUpdate, Data: data})
}

// BroadcastStoreChange announces that a storage key changed so clients can
// re-read.
func BroadcastStoreChange(key string) {
	broadcast(Message{Event: EventStoreChange, Data: map[string]string{"key": key}})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("livefeed: marshal %s event failed: %v", msg.Event, err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("livefeed: dropping client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
