package serverutils

import "github.com/gofiber/fiber/v2"

// StatusFor maps an envelope's success flag to the HTTP status: expected
// domain outcomes with success=false (not found) respond 400, everything
// else 200.
func StatusFor(success bool) int {
	if success {
		return fiber.StatusOK
	}
	return fiber.StatusBadRequest
}
