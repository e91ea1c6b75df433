package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

func (e memoryEntry[V]) isExpired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// Memory is an in-memory cache with TTL-based expiration. A janitor
// goroutine sweeps expired entries on the configured interval; expired
// entries are also dropped lazily on Get.
type Memory[V any] struct {
	items  map[string]memoryEntry[V]
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// NewMemory creates an in-memory cache. cleanupInterval controls how often
// expired entries are swept; zero disables the janitor (lazy expiry only).
func NewMemory[V any](cleanupInterval time.Duration) *Memory[V] {
	m := &Memory[V]{
		items: make(map[string]memoryEntry[V]),
		done:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go m.janitor(cleanupInterval)
	}
	return m
}

// Get retrieves a value by key. Returns ErrNotFound on a miss or after
// expiry.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	// One write lock for the whole lookup. A read-lock-then-relock dance
	// around the lazy delete would let a concurrent Set land in the window
	// and have its fresh value deleted.
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	if e.isExpired() {
		delete(m.items, key)
		var zero V
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := memoryEntry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.items[key] = e
	return nil
}

// Delete removes a key.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Close stops the janitor and drops all entries.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	m.items = make(map[string]memoryEntry[V])
	return nil
}

func (m *Memory[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			for key, e := range m.items {
				if e.isExpired() {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
