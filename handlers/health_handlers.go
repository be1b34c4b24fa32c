package handlers

import "github.com/gofiber/fiber/v2"

// Health reports liveness.
// GET /health
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Transcript API is healthy",
	})
}

// ErrorHandler renders errors that escape a handler, including unknown routes,
// using the same JSON body as RespondWithError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error: " + err.Error()

	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
