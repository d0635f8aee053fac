// Package cache holds a read-through cache for form schemas. Schemas are
// immutable once registered, so entries never need invalidation; the TTL only
// bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"formportal/internal/config"
	"formportal/internal/model"
)

// ErrMiss is returned by Get when no entry exists.
var ErrMiss = errors.New("cache miss")

// SchemaCache stores serialized schemas keyed by id.
type SchemaCache interface {
	Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error)
	Set(ctx context.Context, schema *model.FormSchema) error
}

const keyPrefix = "form_schema:"

// Key returns the cache key for a schema id.
func Key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// RedisSchemaCache is a SchemaCache backed by Redis.
type RedisSchemaCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a client from config. It does not dial; use Ping.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// NewRedisSchemaCache wraps client. A non-positive ttl means entries do not expire.
func NewRedisSchemaCache(client *redis.Client, ttl time.Duration) *RedisSchemaCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisSchemaCache{client: client, ttl: ttl}
}

var _ SchemaCache = (*RedisSchemaCache)(nil)

// Ping verifies connectivity.
func (c *RedisSchemaCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisSchemaCache) Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	raw, err := c.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var s model.FormSchema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode cached schema: %w", err)
	}
	return &s, nil
}

func (c *RedisSchemaCache) Set(ctx context.Context, schema *model.FormSchema) error {
	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	if err := c.client.Set(ctx, Key(schema.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *RedisSchemaCache) Close() error {
	return c.client.Close()
}

// Noop is a SchemaCache that never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*model.FormSchema, error) { return nil, ErrMiss }
func (Noop) Set(context.Context, *model.FormSchema) error               { return nil }
