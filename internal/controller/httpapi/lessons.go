package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/escolakit/scheduler/internal/service"
)

// CreateRecurringLessons разворачивает недельное правило в занятия.
// POST /api/v1/lessons/recurring
func (h *Handler) CreateRecurringLessons(c *fiber.Ctx) error {
	var req recurringLessonsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.scheduler.Schedule(c.Context(), service.ScheduleRequest{
		SubjectID:       req.SubjectID,
		GroupID:         req.GroupID,
		Weekday:         req.Weekday,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		RangeStart:      req.RangeStart,
		RangeEnd:        req.RangeEnd,
		ExceptionDates:  req.ExceptionDates,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// ListLessons возвращает занятия группы за период.
// GET /api/v1/lessons?group_id=&from=&to=
func (h *Handler) ListLessons(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Query("group_id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid group_id")
	}

	lessons, err := h.scheduler.ListForGroup(c.Context(), groupID, c.Query("from"), c.Query("to"))
	if err != nil {
		return h.fail(c, err)
	}

	resp := make([]lessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		resp = append(resp, lessonFromModel(lesson))
	}

	return c.JSON(fiber.Map{"lessons": resp})
}

// RemoveLessons удаляет занятия предмета в диапазоне дат.
// DELETE /api/v1/lessons?subject_id=&range_start=&range_end=
func (h *Handler) RemoveLessons(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid subject_id")
	}

	removed, err := h.removal.RemoveRange(c.Context(), subjectID, c.Query("range_start"), c.Query("range_end"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"removed_count": removed})
}
