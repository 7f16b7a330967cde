package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards operator endpoints with a shared-secret header.
// An empty configured token disables the endpoints entirely.
func AdminMiddleware(token string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if token == "" {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("admin API is not configured"))
		}
		provided := ctx.Get("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("invalid admin token"))
		}
		return ctx.Next()
	}
}
