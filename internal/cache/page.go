// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed cache for rendered share pages.
// Rendering a share page reads the article, injects meta tags, and runs
// the Markdown converter; caching the final HTML skips all of that on
// repeat crawler hits. The cache is optional: a nil *PageCache is a
// no-op, so the server runs fine without a Valkey instance.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached share pages.
	pageKeyPrefix = "share:"

	// DefaultPageTTL is how long a rendered share page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages rendered share-page HTML in Valkey, keyed by article ID.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML for an article. A nil cache always misses.
func (pc *PageCache) Get(ctx context.Context, articleID string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+articleID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "article", articleID, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "article", articleID)
	return val, true
}

// Set stores rendered HTML for an article with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, articleID string, html []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+articleID, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "article", articleID, "error", err)
	}
}

// Invalidate removes a single article's cached page.
func (pc *PageCache) Invalidate(ctx context.Context, articleID string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, pageKeyPrefix+articleID).Err(); err != nil {
		slog.Warn("page cache invalidate error", "article", articleID, "error", err)
	}
	slog.Debug("page cache invalidated", "article", articleID)
}

// InvalidateAll removes every cached share page by scanning for the prefix.
// Used after topic deletion, where any number of articles may be gone.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	if pc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
