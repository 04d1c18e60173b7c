package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hris-onboarding/internal/shared/response"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

// Idempotency replays the cached response of a POST carrying an Idempotency-Key
// header, and rejects a duplicate that arrives while the first is still running.
// A nil client disables it.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis unavailable: process without protection rather than failing the request
			zap.L().Named("middleware.idempotency").Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// CompleteIdempotent stores data for replay (when non-nil) and releases the lock.
// Handlers call it once the service call has returned.
func CompleteIdempotent(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if lockKey := c.GetString(idempotencyLockKey); lockKey != "" {
		defer rdb.Del(ctx, lockKey)
	}

	cacheKey := c.GetString(idempotencyCacheKey)
	if cacheKey == "" || data == nil {
		return
	}
	if raw, err := json.Marshal(data); err == nil {
		rdb.Set(ctx, cacheKey, raw, idempotencyCacheTTL)
	}
}
