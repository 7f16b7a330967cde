package serverutils

import (
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates taxonomy errors into JSON responses.
// Raw causes are logged; only the stable AppError message crosses the boundary.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			status := apperror.HTTPStatus(appErr)
			if status >= 500 {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"kind":  string(appErr.Kind),
					"error": appErr.Error(),
				})
			} else {
				log.Warn("http", "request rejected", map[string]interface{}{
					"path": ctx.Path(),
					"kind": string(appErr.Kind),
				})
			}
			return ctx.Status(status).JSON(ErrorResponse(appErr.Message))
		}

		// Fiber's own errors (404, body too large, ...) keep their status.
		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
