package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"

	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/railscout/railscout/pkg/scraper"
)

// ResultCache holds recently parsed search results so that repeated searches
// within the TTL skip the booking interface entirely. Values are JSON
// serialised result lists keyed by SearchRequest.CacheKey.
type ResultCache struct {
	cache *gocache.Cache[string]
}

func NewResultCache(ttl time.Duration) *ResultCache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(ttl))

	return &ResultCache{
		cache: gocache.New[string](redisStore),
	}
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]scraper.Result, bool) {
	cacheValue, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var results []scraper.Result
	if err := json.Unmarshal([]byte(cacheValue), &results); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cached results")
		return nil, false
	}

	return results, true
}

func (c *ResultCache) Set(ctx context.Context, key string, results []scraper.Result) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to serialise results for cache")
		return
	}

	if err := c.cache.Set(ctx, key, string(resultsJSON)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to cache results")
	}
}
