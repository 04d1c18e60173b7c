package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CatalogKeyPrefix = "onboarding:catalog:"

// GetCatalogKey is per company and requested workflow ("default" when none).
func GetCatalogKey(companyID, workflowID string) string {
	if workflowID == "" {
		workflowID = "default"
	}
	return CatalogKeyPrefix + companyID + ":" + workflowID
}

// catalogCache is a read-through cache: in-process L1 in front of redis.
// Either tier may be absent.
type catalogCache struct {
	local    *gocache.Cache
	rdb      *redis.Client
	redisTTL time.Duration
	sf       singleflight.Group
	logger   *zap.Logger
}

func newCatalogCache(rdb *redis.Client, redisTTL, localTTL time.Duration, logger *zap.Logger) *catalogCache {
	c := &catalogCache{rdb: rdb, redisTTL: redisTTL, logger: logger}
	if localTTL > 0 {
		c.local = gocache.New(localTTL, 2*localTTL)
	}
	return c
}

func (c *catalogCache) getOrLoad(ctx context.Context, key string, load func() (Catalog, error)) (Catalog, error) {
	if c.local != nil {
		if v, ok := c.local.Get(key); ok {
			return v.(Catalog), nil
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if c.rdb != nil {
			if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
				var cat Catalog
				if json.Unmarshal([]byte(cached), &cat) == nil {
					c.setLocal(key, cat)
					return cat, nil
				}
			}
		}

		cat, err := load()
		if err != nil {
			return nil, err
		}

		if c.rdb != nil {
			if raw, err := json.Marshal(cat); err == nil {
				if err := c.rdb.Set(ctx, key, raw, c.redisTTL).Err(); err != nil {
					c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		c.setLocal(key, cat)
		return cat, nil
	})
	if err != nil {
		return Catalog{}, err
	}
	return v.(Catalog), nil
}

func (c *catalogCache) setLocal(key string, cat Catalog) {
	if c.local != nil {
		c.local.SetDefault(key, cat)
	}
}

// invalidate drops every key under prefix from both tiers.
func (c *catalogCache) invalidate(ctx context.Context, prefix string) {
	if c.local != nil {
		for key := range c.local.Items() {
			if strings.HasPrefix(key, prefix) {
				c.local.Delete(key)
			}
		}
	}

	if c.rdb == nil {
		return
	}

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			c.logger.Error("failed to scan catalog cache", zap.String("prefix", prefix), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.logger.Error("failed to invalidate catalog cache", zap.String("prefix", prefix), zap.Error(err))
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
