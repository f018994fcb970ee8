package cache

import (
	"context"
	"sync"
	"time"

	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/monitoring"
)

// cacheEntry holds one ranked candidate list with its expiration
type cacheEntry struct {
	items      []domain.Candidate
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory result store with TTL support.
// All entries share the TTL given at construction.
type MemoryStore struct {
	data  map[string]cacheEntry
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory result store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}

	store := &MemoryStore{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go store.cleanupExpired()

	return store
}

// Get retrieves a ranked candidate list from the store
func (s *MemoryStore) Get(ctx context.Context, key string) ([]domain.Candidate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.data[key]
	if !exists {
		monitoring.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, domain.ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(entry.expiration) {
		monitoring.CacheLookupsTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrCacheMiss
	}

	monitoring.CacheLookupsTotal.WithLabelValues("hit").Inc()

	// Copy out so callers cannot mutate the cached slice
	items := make([]domain.Candidate, len(entry.items))
	copy(items, entry.items)
	return items, nil
}

// Set stores a ranked candidate list under the key
func (s *MemoryStore) Set(ctx context.Context, key string, items []domain.Candidate) error {
	stored := make([]domain.Candidate, len(items))
	copy(stored, items)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = cacheEntry{
		items:      stored,
		expiration: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes an entry from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Exists checks if a key exists in the store and is not expired
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.data[key]
	if !exists {
		return false, nil
	}

	// Check if expired
	if time.Now().After(entry.expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the store periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.data {
			if now.After(entry.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of entries (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all entries from the store
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]cacheEntry)
}
