package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/model"
)

// CancelFailure — занятие, которое не удалось отменить при каскаде
type CancelFailure struct {
	LessonID int64  `json:"lesson_id"`
	Error    string `json:"error"`
}

// HolidayReport — результат объявления неучебного дня
type HolidayReport struct {
	Day            *model.NonTeachingDay
	CancelledCount int
	Failed         []CancelFailure
}

// HolidayService объявляет неучебные дни и каскадно отменяет занятия на них
type HolidayService struct {
	days    NonTeachingDayStore
	lessons LessonStore
	logger  *zap.Logger
}

// NewHolidayService создаёт новый сервис неучебных дней
func NewHolidayService(days NonTeachingDayStore, lessons LessonStore, logger *zap.Logger) *HolidayService {
	return &HolidayService{
		days:    days,
		lessons: lessons,
		logger:  logger,
	}
}

// Declare сохраняет неучебный день и удаляет все занятия на эту дату по всем
// группам. Ошибки отмены отдельных занятий собираются в отчёт и не откатывают
// уже объявленный день
func (s *HolidayService) Declare(ctx context.Context, day, description string) (*HolidayReport, error) {
	date, err := parseDate(day)
	if err != nil {
		return nil, err
	}

	ntd := &model.NonTeachingDay{
		Day:         date,
		Description: description,
	}

	if err := s.days.Create(ctx, ntd); err != nil {
		if isUniqueViolation(err) {
			return nil, NewValidationError("non-teaching day %s is already declared", day)
		}
		return nil, storeFailure(fmt.Errorf("declare non-teaching day: %w", err))
	}

	report := &HolidayReport{
		Day:    ntd,
		Failed: []CancelFailure{},
	}
	report.CancelledCount, report.Failed = s.cancelLessonsOn(ctx, ntd)

	s.logger.Info("Non-teaching day declared",
		zap.String("day", day),
		zap.String("description", description),
		zap.Int("cancelled", report.CancelledCount),
		zap.Int("failed", len(report.Failed)),
	)

	return report, nil
}

// List возвращает все объявленные неучебные дни
func (s *HolidayService) List(ctx context.Context) ([]*model.NonTeachingDay, error) {
	days, err := s.days.GetAll(ctx)
	if err != nil {
		return nil, storeFailure(fmt.Errorf("list non-teaching days: %w", err))
	}
	return days, nil
}

// Sweep повторно применяет отмену для всех объявленных неучебных дней.
// Подбирает занятия, созданные наперегонки с объявлением дня
func (s *HolidayService) Sweep(ctx context.Context) error {
	days, err := s.days.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("get non-teaching days: %w", err)
	}

	total := 0
	for _, day := range days {
		cancelled, failed := s.cancelLessonsOn(ctx, day)
		total += cancelled
		if len(failed) > 0 {
			s.logger.Warn("Sweep left lessons behind",
				zap.Time("day", day.Day),
				zap.Int("failed", len(failed)))
		}
	}

	s.logger.Info("Non-teaching day sweep completed",
		zap.Int("days", len(days)),
		zap.Int("cancelled", total),
	)

	return nil
}

// cancelLessonsOn удаляет занятия на дату, продолжая при ошибках отдельных удалений
func (s *HolidayService) cancelLessonsOn(ctx context.Context, day *model.NonTeachingDay) (int, []CancelFailure) {
	failed := []CancelFailure{}

	lessons, err := s.lessons.GetByDate(ctx, day.Day)
	if err != nil {
		s.logger.Error("Failed to list lessons for cancellation",
			zap.Time("day", day.Day),
			zap.Error(err))
		failed = append(failed, CancelFailure{Error: fmt.Sprintf("list lessons: %v", err)})
		return 0, failed
	}

	cancelled := 0
	for _, lesson := range lessons {
		if err := s.lessons.Delete(ctx, lesson.ID); err != nil {
			s.logger.Error("Failed to cancel lesson",
				zap.Int64("lesson_id", lesson.ID),
				zap.Time("day", day.Day),
				zap.Error(err))
			failed = append(failed, CancelFailure{LessonID: lesson.ID, Error: err.Error()})
			continue
		}
		cancelled++
	}

	return cancelled, failed
}
