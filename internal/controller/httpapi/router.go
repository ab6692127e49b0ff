package httpapi

import "github.com/gofiber/fiber/v2"

// RegisterRoutes подключает маршруты ядра планирования к приложению
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/v1")

	api.Post("/lessons/recurring", h.CreateRecurringLessons)
	api.Get("/lessons", h.ListLessons)
	api.Delete("/lessons", h.RemoveLessons)

	api.Post("/non-teaching-days", h.DeclareNonTeachingDay)
	api.Get("/non-teaching-days", h.ListNonTeachingDays)
}
