package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/model"
	"github.com/escolakit/scheduler/internal/schedule"
)

// Причины пропуска даты в отчёте планирования
const (
	SkipReasonExcludedDate = "excluded date"
	SkipReasonTimeConflict = "time conflict with existing lesson"
)

const dateLayout = "2006-01-02"

// ScheduleRequest — недельное правило в сыром виде, как пришло с границы.
// Валидация и приведение к model.RecurrenceRule происходят в Schedule
type ScheduleRequest struct {
	SubjectID       uuid.UUID
	GroupID         uuid.UUID
	Weekday         schedule.WeekdayValue
	StartTime       string // "HH:MM"
	DurationMinutes int
	RangeStart      string // "YYYY-MM-DD"
	RangeEnd        string
	ExceptionDates  []string
}

// CreatedLesson — созданное занятие в отчёте планирования
type CreatedLesson struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// SkippedLesson — пропущенная дата с причиной
type SkippedLesson struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// ScheduleReport — отчёт о частично успешном прогоне правила.
// Оба списка упорядочены по возрастанию даты
type ScheduleReport struct {
	Created      []CreatedLesson `json:"created"`
	Skipped      []SkippedLesson `json:"skipped"`
	CreatedCount int             `json:"created_count"`
	SkippedCount int             `json:"skipped_count"`
}

// SchedulerService разворачивает недельное правило в конкретные занятия
type SchedulerService struct {
	lessons   LessonStore
	refs      ReferenceStore
	conflicts *ConflictChecker
	logger    *zap.Logger
}

// NewSchedulerService создаёт новый сервис планирования
func NewSchedulerService(lessons LessonStore, refs ReferenceStore, conflicts *ConflictChecker, logger *zap.Logger) *SchedulerService {
	return &SchedulerService{
		lessons:   lessons,
		refs:      refs,
		conflicts: conflicts,
		logger:    logger,
	}
}

// Schedule валидирует правило, разворачивает его в даты и создаёт занятия.
// Каждая дата — независимая единица работы: ошибка сохранения одной даты
// записывается в skipped и не прерывает остальные. Повторный прогон того же
// правила не дедуплицируется: несконфликтовавшие даты будут созданы ещё раз
func (s *SchedulerService) Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleReport, error) {
	rule, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, rule); err != nil {
		return nil, err
	}

	report := &ScheduleReport{
		Created: []CreatedLesson{},
		Skipped: []SkippedLesson{},
	}

	startTime := schedule.FormatClock(rule.StartHour, rule.StartMinute)
	startMinutes := rule.StartHour*60 + rule.StartMinute

	for _, date := range schedule.Expand(rule.Weekday, rule.RangeStart, rule.RangeEnd) {
		key := date.Format(dateLayout)

		if _, excluded := rule.ExceptionDates[key]; excluded {
			report.Skipped = append(report.Skipped, SkippedLesson{Date: key, Reason: SkipReasonExcludedDate})
			continue
		}

		if s.conflicts.HasConflict(ctx, rule.GroupID, date, startMinutes, rule.DurationMinutes) {
			report.Skipped = append(report.Skipped, SkippedLesson{Date: key, Reason: SkipReasonTimeConflict})
			continue
		}

		lesson := &model.Lesson{
			GroupID:           rule.GroupID,
			SubjectID:         rule.SubjectID,
			Date:              date,
			StartHour:         intPtr(rule.StartHour),
			StartMinute:       intPtr(rule.StartMinute),
			DurationMinutes:   intPtr(rule.DurationMinutes),
			Completed:         false,
			AttendanceApplied: false,
		}

		if err := s.lessons.Create(ctx, lesson); err != nil {
			s.logger.Warn("Failed to create lesson",
				zap.String("date", key),
				zap.Error(err))
			report.Skipped = append(report.Skipped, SkippedLesson{Date: key, Reason: err.Error()})
			continue
		}

		report.Created = append(report.Created, CreatedLesson{
			ID:        lesson.ID,
			Date:      key,
			StartTime: startTime,
		})
	}

	report.CreatedCount = len(report.Created)
	report.SkippedCount = len(report.Skipped)

	s.logger.Info("Recurring rule scheduled",
		zap.String("group_id", rule.GroupID.String()),
		zap.String("subject_id", rule.SubjectID.String()),
		zap.Int("weekday", int(rule.Weekday)),
		zap.Int("created", report.CreatedCount),
		zap.Int("skipped", report.SkippedCount),
	)

	return report, nil
}

// ListForGroup возвращает занятия группы за период
func (s *SchedulerService) ListForGroup(ctx context.Context, groupID uuid.UUID, from, to string) ([]*model.Lesson, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}

	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	if fromDate.After(toDate) {
		return nil, NewValidationError("range start %s is after range end %s", from, to)
	}

	lessons, err := s.lessons.GetByGroupAndRange(ctx, groupID, fromDate, toDate)
	if err != nil {
		return nil, storeFailure(fmt.Errorf("list lessons: %w", err))
	}

	return lessons, nil
}

// validate приводит сырой запрос к каноническому правилу
func (s *SchedulerService) validate(req ScheduleRequest) (*model.RecurrenceRule, error) {
	weekday, err := req.Weekday.Resolve()
	if err != nil {
		return nil, NewValidationError("%s", err.Error())
	}

	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, NewValidationError("%s", err.Error())
	}

	if req.DurationMinutes <= 0 {
		return nil, NewValidationError("duration must be positive, got %d", req.DurationMinutes)
	}

	rangeStart, err := parseDate(req.RangeStart)
	if err != nil {
		return nil, err
	}

	rangeEnd, err := parseDate(req.RangeEnd)
	if err != nil {
		return nil, err
	}

	if rangeStart.After(rangeEnd) {
		return nil, NewValidationError("range start %s is after range end %s", req.RangeStart, req.RangeEnd)
	}

	// Даты-исключения вне диапазона допустимы: они просто никогда не совпадут
	exceptions := make(map[string]struct{}, len(req.ExceptionDates))
	for _, raw := range req.ExceptionDates {
		date, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		exceptions[date.Format(dateLayout)] = struct{}{}
	}

	return &model.RecurrenceRule{
		SubjectID:       req.SubjectID,
		GroupID:         req.GroupID,
		Weekday:         weekday,
		StartHour:       start.Hour,
		StartMinute:     start.Minute,
		DurationMinutes: req.DurationMinutes,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		ExceptionDates:  exceptions,
	}, nil
}

// checkReferences проверяет существование предмета и группы
func (s *SchedulerService) checkReferences(ctx context.Context, rule *model.RecurrenceRule) error {
	exists, err := s.refs.SubjectExists(ctx, rule.SubjectID)
	if err != nil {
		return storeFailure(fmt.Errorf("check subject: %w", err))
	}
	if !exists {
		return &NotFoundError{Resource: "subject"}
	}

	exists, err = s.refs.GroupExists(ctx, rule.GroupID)
	if err != nil {
		return storeFailure(fmt.Errorf("check group: %w", err))
	}
	if !exists {
		return &NotFoundError{Resource: "group"}
	}

	return nil
}

// parseDate разбирает дату формата YYYY-MM-DD
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date %q: expected YYYY-MM-DD", s)
	}
	return date, nil
}

func intPtr(n int) *int {
	return &n
}
