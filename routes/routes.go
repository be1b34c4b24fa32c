// Package routes builds the fiber application. Route and CORS registration
// happens once here; nothing is added after NewApp returns.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "videothingy/transcript-api/docs" // registers the swagger spec
	"videothingy/transcript-api/handlers"
	"videothingy/transcript-api/middleware"
)

// NewApp wires middleware and routes around h.
func NewApp(h *handlers.ApplicationHandler, logger *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "YouTube Transcript API",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,HEAD,OPTIONS",
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())

	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/transcript", h.GetTranscript)

	api.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/api/docs/index.html", fiber.StatusMovedPermanently)
	})
	api.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}
