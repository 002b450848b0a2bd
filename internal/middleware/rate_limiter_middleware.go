package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter membatasi request per user yang login, atau per IP klien
// untuk request anonim. Pasang setelah Session() supaya user terbaca.
func RateLimiter(limit int, expiration time.Duration) fiber.Handler {
	if limit == 0 {
		limit = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   expiration,
		KeyGenerator: rateLimitKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"message": "Terlalu banyak permintaan",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

func rateLimitKey(c *fiber.Ctx) string {
	if s := GetSession(c); s.Authenticated {
		return "user:" + s.UserID.String()
	}
	return "ip:" + c.IP()
}
