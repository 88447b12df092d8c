package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps payloads in Redis so a cart survives restarts and is
// shared by every instance pointed at the same server. Redis has no
// per-key change stream we can rely on across deployments, so the
// subscription contract is satisfied by polling the watched keys and
// diffing raw payloads; staleness is bounded by the poll interval.
type RedisStore struct {
	client   *redis.Client
	timeout  time.Duration
	interval time.Duration
	watched  []string

	mu       sync.Mutex
	subs     []chan ChangeEvent
	lastSeen map[string]string
	stop     chan struct{}
	closed   bool
}

// NewRedisStore wraps client and watches the given keys for changes.
// Polling starts lazily with the first subscriber.
func NewRedisStore(client *redis.Client, pollInterval time.Duration, watchKeys ...string) *RedisStore {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &RedisStore{
		client:   client,
		timeout:  3 * time.Second,
		interval: pollInterval,
		watched:  watchKeys,
		lastSeen: make(map[string]string),
		stop:     make(chan struct{}),
	}
}

func (s *RedisStore) Read(key string, into interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("store: redis read of %q failed, using default: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		log.Printf("store: corrupt payload under %q, using default: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Write(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: dropping write to %q: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		log.Printf("store: redis write to %q failed, in-memory state stays authoritative: %v", key, err)
		return
	}
	s.markSeen(key, string(raw))
	s.notify(key)
}

func (s *RedisStore) Clear(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Printf("store: redis clear of %q failed: %v", key, err)
		return
	}
	s.markSeen(key, "")
	s.notify(key)
}

func (s *RedisStore) Subscribe() <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 16)
	s.mu.Lock()
	startPoller := len(s.subs) == 0 && !s.closed
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	if startPoller {
		go s.poll()
	}
	return ch
}

func (s *RedisStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.stop)
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

func (s *RedisStore) poll() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.checkWatched()
		case <-s.stop:
			return
		}
	}
}

// checkWatched re-reads every watched key and emits a change event for any
// payload that differs from the last one seen. Writes from other instances
// (the "other tab") surface here.
func (s *RedisStore) checkWatched() {
	for _, key := range s.watched {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		raw, err := s.client.Get(ctx, key).Result()
		cancel()
		if err == redis.Nil {
			raw = ""
		} else if err != nil {
			log.Printf("store: poll of %q failed: %v", key, err)
			continue
		}

		s.mu.Lock()
		prev, seen := s.lastSeen[key]
		s.lastSeen[key] = raw
		s.mu.Unlock()

		if seen && prev != raw {
			s.notify(key)
		}
	}
}

func (s *RedisStore) markSeen(key, raw string) {
	s.mu.Lock()
	s.lastSeen[key] = raw
	s.mu.Unlock()
}

func (s *RedisStore) notify(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- ChangeEvent{Key: key}:
		default:
		}
	}
}
