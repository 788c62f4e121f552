package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"notes-taking-be/internal/dto"
)

// ErrorHandlerMiddleware turns any error escaping a handler into a 500
// with the envelope as body. Expected outcomes never reach here, services
// return them as envelopes with success=false.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(&dto.Response{
			Success: false,
			Message: err.Error(),
		})
	}
}
