package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/service"
)

// fail переводит ошибку сервиса в HTTP-статус:
// валидация → 400, не найдено → 404, недоступное хранилище → 503, прочее → 500
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var infraErr *service.InfrastructureError

	switch {
	case errors.As(err, &validationErr):
		return jsonError(c, fiber.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return jsonError(c, fiber.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &infraErr):
		h.logger.Error("Storage unavailable", zap.Error(err))
		return jsonError(c, fiber.StatusServiceUnavailable, "storage unavailable")
	default:
		h.logger.Error("Request failed", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
