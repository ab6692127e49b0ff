package httpapi

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/model"
	"github.com/escolakit/scheduler/internal/service"
)

// Scheduler — планирование занятий по недельному правилу
type Scheduler interface {
	Schedule(ctx context.Context, req service.ScheduleRequest) (*service.ScheduleReport, error)
	ListForGroup(ctx context.Context, groupID uuid.UUID, from, to string) ([]*model.Lesson, error)
}

// HolidayDeclarer — объявление неучебных дней
type HolidayDeclarer interface {
	Declare(ctx context.Context, day, description string) (*service.HolidayReport, error)
	List(ctx context.Context) ([]*model.NonTeachingDay, error)
}

// LessonRemover — массовое удаление занятий
type LessonRemover interface {
	RemoveRange(ctx context.Context, subjectID uuid.UUID, rangeStart, rangeEnd string) (int64, error)
}

// Handler связывает HTTP-маршруты с сервисами ядра
type Handler struct {
	scheduler Scheduler
	holidays  HolidayDeclarer
	removal   LessonRemover
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewHandler создаёт новый HTTP-обработчик
func NewHandler(scheduler Scheduler, holidays HolidayDeclarer, removal LessonRemover, logger *zap.Logger) *Handler {
	return &Handler{
		scheduler: scheduler,
		holidays:  holidays,
		removal:   removal,
		validate:  validator.New(),
		logger:    logger,
	}
}
