package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware rejecting requests without the configured key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get(Header)), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		return c.Next()
	}
}
