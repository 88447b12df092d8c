package store

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore keeps payloads in-process. It is the default driver when no
// Redis address is configured and the store used throughout the tests.
// Change events fire synchronously on every write and clear.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	subs   []chan ChangeEvent
	closed bool
	subsMu sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Read(key string, into interface{}) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		log.Printf("store: corrupt payload under %q, using default: %v", key, err)
		return false
	}
	return true
}

func (s *MemoryStore) Write(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: dropping write to %q: %v", key, err)
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	s.notify(key)
}

func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	s.notify(key)
}

func (s *MemoryStore) Subscribe() <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 16)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *MemoryStore) Close() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

func (s *MemoryStore) notify(key string) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- ChangeEvent{Key: key}:
		default:
			// Slow consumer, drop. Staleness is acceptable here.
		}
	}
}
