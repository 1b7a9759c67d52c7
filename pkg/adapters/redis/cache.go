// Package redis implements the entry cache port on Redis, keeping
// fetched entry sets warm between the Materials Project API and the
// on-disk store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elchem/pourbaix/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.EntryCache using Redis. Values are JSON
// encoded entry slices keyed by element symbol.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached entry sets.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache with its own Redis client.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: "pourbaix:entries:",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached entry set for symbol. A miss returns ok=false
// with no error; a corrupt value is treated as a miss after deletion.
func (c *Cache) Get(ctx context.Context, symbol string) ([]domain.Entry, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+symbol).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", symbol, err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Stale or corrupt value; drop it and treat as a miss.
		c.client.Del(ctx, c.prefix+symbol)
		return nil, false, nil
	}
	return entries, true, nil
}

// Put stores the entry set for symbol under the configured TTL.
func (c *Cache) Put(ctx context.Context, symbol string, entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries for %s: %w", symbol, err)
	}
	if err := c.client.Set(ctx, c.prefix+symbol, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", symbol, err)
	}
	return nil
}

// Ping verifies connectivity, for fail-fast startup checks.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
