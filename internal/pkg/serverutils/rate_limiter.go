package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware caps requests per client IP using a Redis counter.
// With no Redis configured, or when Redis is unreachable, requests pass
// through; the widget endpoint must not go down with the cache.
func RateLimitMiddleware(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rdb == nil || max <= 0 {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:chats:%s", ExtractClientMeta(ctx).IpAddress)

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			return ctx.Next()
		}
		if count == 1 {
			rdb.Expire(ctx.Context(), key, window)
		}

		if count > int64(max) {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(ErrorResponse(fiber.StatusTooManyRequests, "Too many requests, slow down"))
		}

		return ctx.Next()
	}
}
