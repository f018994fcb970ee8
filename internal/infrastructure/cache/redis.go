package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/monitoring"
)

// RedisStore persists ranked candidate lists in Redis as JSON, sharing one
// TTL across entries. It lets multiple instances serve the same cache.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using a standard connection URL
// (redis://[user:pass@]host:port/db) and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	if ttl <= 0 {
		ttl = time.Hour
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get retrieves a ranked candidate list from Redis
func (s *RedisStore) Get(ctx context.Context, key string) ([]domain.Candidate, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		monitoring.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var items []domain.Candidate
	if err := json.Unmarshal(payload, &items); err != nil {
		// A corrupt entry behaves like a miss so the pipeline recomputes it.
		monitoring.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, domain.ErrCacheMiss
	}
	monitoring.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return items, nil
}

// Set stores a ranked candidate list in Redis with the store's TTL
func (s *RedisStore) Set(ctx context.Context, key string, items []domain.Candidate) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes an entry from Redis
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close releases the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
