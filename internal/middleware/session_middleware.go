package middleware

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"

	sessionKey = "session"
)

// Session membaca identitas yang diteruskan gateway auth lewat header
// dan menyimpannya di Locals.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionKey, session.New(
			c.Get(HeaderUserID),
			c.Get(HeaderUserName),
			c.Get(HeaderUserRole),
		))
		return c.Next()
	}
}

// RequireAuth menolak request tanpa session yang valid.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Silakan login terlebih dahulu",
			})
		}
		return c.Next()
	}
}

func GetSession(c *fiber.Ctx) session.Session {
	s, ok := c.Locals(sessionKey).(session.Session)
	if !ok {
		return session.Session{}
	}
	return s
}
