// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// categories.go caches the category id → type map in Valkey. Categories
// change only when the database is seeded, so every listing endpoint can
// skip the categories query once the map is cached.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia/internal/models"
)

const (
	// categoriesKey is the Valkey key holding the JSON-encoded category map.
	categoriesKey = "categories:map"

	// DefaultCategoryTTL is how long the category map stays cached.
	DefaultCategoryTTL = 10 * time.Minute
)

// CategoryLoader is the source of truth the cache falls back to on a miss.
type CategoryLoader interface {
	Map(ctx context.Context) (models.CategoryMap, error)
}

// Categories is a read-through cache for the category map. A nil client
// disables caching and every call goes straight to the loader.
type Categories struct {
	client *redis.Client
	loader CategoryLoader
	ttl    time.Duration
}

// NewCategories creates a category cache backed by the given Valkey client.
// client may be nil when Valkey is not available.
func NewCategories(client *redis.Client, loader CategoryLoader, ttl time.Duration) *Categories {
	if ttl == 0 {
		ttl = DefaultCategoryTTL
	}
	return &Categories{client: client, loader: loader, ttl: ttl}
}

// Map returns the category map, serving it from Valkey when cached.
// Valkey errors are logged and never fail the request.
func (c *Categories) Map(ctx context.Context) (models.CategoryMap, error) {
	if c.client == nil {
		return c.loader.Map(ctx)
	}

	if cached, ok := c.get(ctx); ok {
		return cached, nil
	}

	m, err := c.loader.Map(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, m)
	return m, nil
}

// Invalidate drops the cached map so the next call reloads it.
func (c *Categories) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		slog.Warn("category cache invalidate error", "error", err)
		return
	}
	slog.Debug("category cache invalidated")
}

func (c *Categories) get(ctx context.Context) (models.CategoryMap, bool) {
	val, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("category cache get error", "error", err)
		return nil, false
	}

	var m models.CategoryMap
	if err := json.Unmarshal(val, &m); err != nil {
		slog.Warn("category cache decode error", "error", err)
		return nil, false
	}
	slog.Debug("category cache hit", "categories", len(m))
	return m, true
}

func (c *Categories) set(ctx context.Context, m models.CategoryMap) {
	data, err := json.Marshal(m)
	if err != nil {
		slog.Warn("category cache encode error", "error", err)
		return
	}
	if err := c.client.Set(ctx, categoriesKey, data, c.ttl).Err(); err != nil {
		slog.Warn("category cache set error", "error", err)
	}
}
