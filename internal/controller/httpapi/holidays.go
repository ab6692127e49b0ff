package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

// DeclareNonTeachingDay объявляет неучебный день и отменяет занятия на него.
// POST /api/v1/non-teaching-days
func (h *Handler) DeclareNonTeachingDay(c *fiber.Ctx) error {
	var req nonTeachingDayRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.holidays.Declare(c.Context(), req.Date, req.Description)
	if err != nil {
		return h.fail(c, err)
	}

	resp := fiber.Map{
		"date":            report.Day.Day.Format("2006-01-02"),
		"description":     report.Day.Description,
		"cancelled_count": report.CancelledCount,
	}
	if len(report.Failed) > 0 {
		resp["failed"] = report.Failed
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListNonTeachingDays возвращает все объявленные неучебные дни.
// GET /api/v1/non-teaching-days
func (h *Handler) ListNonTeachingDays(c *fiber.Ctx) error {
	days, err := h.holidays.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	resp := make([]nonTeachingDayResponse, 0, len(days))
	for _, day := range days {
		resp = append(resp, nonTeachingDayFromModel(day))
	}

	return c.JSON(fiber.Map{"non_teaching_days": resp})
}
