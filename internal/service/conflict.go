package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/schedule"
)

// ConflictChecker проверяет пересечение нового занятия с уже сохранёнными
// занятиями той же группы на ту же дату. Разные группы не конфликтуют
type ConflictChecker struct {
	lessons LessonStore
	logger  *zap.Logger
}

// NewConflictChecker создаёт новый детектор конфликтов
func NewConflictChecker(lessons LessonStore, logger *zap.Logger) *ConflictChecker {
	return &ConflictChecker{
		lessons: lessons,
		logger:  logger,
	}
}

// HasConflict сообщает, пересекается ли окно [startMinutes, startMinutes+durationMinutes)
// с каким-либо занятием группы на дату. Занятия без времени или длительности
// в сравнении не участвуют. Ошибка чтения трактуется как отсутствие конфликта:
// планирование не блокируется из-за временного сбоя чтения (fail-open)
func (c *ConflictChecker) HasConflict(ctx context.Context, groupID uuid.UUID, date time.Time, startMinutes, durationMinutes int) bool {
	existing, err := c.lessons.GetByGroupAndDate(ctx, groupID, date)
	if err != nil {
		c.logger.Warn("Conflict lookup failed, treating as no conflict",
			zap.String("group_id", groupID.String()),
			zap.Time("date", date),
			zap.Error(err))
		return false
	}

	newEnd := startMinutes + durationMinutes
	for _, lesson := range existing {
		if !lesson.HasTimeWindow() {
			continue
		}

		existingStart := lesson.StartMinutes()
		existingEnd := existingStart + *lesson.DurationMinutes
		if schedule.Overlaps(startMinutes, newEnd, existingStart, existingEnd) {
			return true
		}
	}

	return false
}
