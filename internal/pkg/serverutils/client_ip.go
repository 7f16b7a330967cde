package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP derives the caller's network origin as best-effort metadata.
// Order: first X-Forwarded-For hop, then X-Real-IP, then the socket address.
// Missing origin information is never an error.
func ClientIP(ctx *fiber.Ctx) string {
	if fwd := ctx.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			fwd = fwd[:idx]
		}
		if ip := strings.TrimSpace(fwd); ip != "" {
			return ip
		}
	}
	if real := strings.TrimSpace(ctx.Get("X-Real-IP")); real != "" {
		return real
	}
	return ctx.IP()
}
