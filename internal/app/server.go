package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/controller/httpapi"
)

// NewServer собирает HTTP-приложение с маршрутами ядра планирования
func NewServer(handler *httpapi.Handler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "escola-scheduler",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpapi.RegisterRoutes(app, handler)
	logger.Info("HTTP routes registered")

	return app
}
