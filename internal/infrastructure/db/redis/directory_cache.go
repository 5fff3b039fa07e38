package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/ports"
)

const (
	directoryKey = "directory:colleges"
	directoryTTL = 5 * time.Minute
)

// DirectoryCache caches the public college directory as a JSON blob. The
// directory changes only when a college registers, so a short TTL keeps it
// fresh without invalidation plumbing. All failures are logged and swallowed;
// callers fall back to the store.
type DirectoryCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewDirectoryCache wraps the given Redis client.
func NewDirectoryCache(client *redis.Client, log zerolog.Logger) *DirectoryCache {
	return &DirectoryCache{client: client, log: log}
}

// Get returns the cached directory and whether it was present.
func (c *DirectoryCache) Get(ctx context.Context) ([]ports.CollegeSummary, bool) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("directory cache get failed")
		}
		return nil, false
	}

	var colleges []ports.CollegeSummary
	if err := json.Unmarshal(raw, &colleges); err != nil {
		c.log.Warn().Err(err).Msg("directory cache decode failed")
		return nil, false
	}
	return colleges, true
}

// Set stores the directory with the cache TTL.
func (c *DirectoryCache) Set(ctx context.Context, colleges []ports.CollegeSummary) {
	raw, err := json.Marshal(colleges)
	if err != nil {
		c.log.Warn().Err(err).Msg("directory cache encode failed")
		return
	}
	if err := c.client.Set(ctx, directoryKey, raw, directoryTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("directory cache set failed")
	}
}
