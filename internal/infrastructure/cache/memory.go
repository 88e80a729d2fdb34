// Package cache provides the in-process response cache: a fixed-capacity,
// TTL-expiring key/value map with least-recently-used eviction.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const (
	// DefaultCapacity bounds the entry count when none is configured.
	DefaultCapacity = 1000
	// DefaultTTL is the fallback expiry window for Set calls with ttl <= 0.
	DefaultTTL = 5 * time.Minute
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Memory is a bounded, TTL-expiring, LRU-evicting byte cache. It is the only
// mutable structure shared across concurrent requests, so every method holds
// the mutex for its full duration. Expired entries are dropped lazily on Get;
// when the cache is full, the least recently used entry is evicted.
type Memory struct {
	mu       sync.Mutex
	capacity int
	order    *list.List               // front = most recently used
	items    map[string]*list.Element // element value is *entry
	now      func() time.Time         // swappable in tests
}

// NewMemory creates a Memory cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get returns the value stored under key if it exists and has not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return nil, false
	}

	ent := el.Value.(*entry)
	if !m.now().Before(ent.expiresAt) {
		m.removeLocked(el)
		return nil, false
	}

	m.order.MoveToFront(el)
	return ent.value, true
}

// Set stores value under key for ttl. An existing entry is overwritten and
// its expiry reset; a full cache evicts its least recently used entry first.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := m.now().Add(ttl)
	if el, ok := m.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value = value
		ent.expiresAt = expiresAt
		m.order.MoveToFront(el)
		return
	}

	if m.order.Len() >= m.capacity {
		if oldest := m.order.Back(); oldest != nil {
			m.removeLocked(oldest)
		}
	}

	m.items[key] = m.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
}

// Delete removes the entry stored under key, if any.
func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.removeLocked(el)
	}
}

// Len reports the current entry count, expired entries included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memory) removeLocked(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*entry).key)
}
