package store

import (
	"errors"
	"sync"
	"time"

	"github.com/aeronav/flightroutes/internal/route"
)

// ErrNotFound is returned when no cached plan exists for a given key.
var ErrNotFound = errors.New("no cached plan for key")

type cachedPlan struct {
	plan     *route.Plan
	storedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of computed route plans.
// Plans are immutable once computed, so the cache hands out the stored
// pointer directly.
type MemoryStore struct {
	mu sync.RWMutex

	data  map[string]cachedPlan
	order []string // insertion order, for count-based eviction

	// retention configuration
	maxEntries int           // max number of cached plans (0 = unlimited)
	maxAge     time.Duration // max age of a cached plan (0 = unlimited)
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxEntries is <= 0, it is treated as unlimited.
func NewMemoryStore(maxEntries int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]cachedPlan),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// Save caches a plan under the given key and enforces retention by count.
func (s *MemoryStore) Save(key string, plan *route.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		s.order = append(s.order, key)
	}
	s.data[key] = cachedPlan{plan: plan, storedAt: time.Now()}

	if s.maxEntries > 0 && len(s.order) > s.maxEntries {
		over := len(s.order) - s.maxEntries
		for _, stale := range s.order[:over] {
			delete(s.data, stale)
		}
		s.order = s.order[over:]
	}
}

// Get returns the cached plan for a key, honoring the age limit.
func (s *MemoryStore) Get(key string) (*route.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(entry.storedAt) > s.maxAge {
		return nil, ErrNotFound
	}
	return entry.plan, nil
}

// Clear drops every cached plan. Called when the dataset snapshot changes.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]cachedPlan)
	s.order = nil
}

// Len returns the number of cached plans, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
