package httpapi

import (
	"github.com/google/uuid"

	"github.com/escolakit/scheduler/internal/model"
	"github.com/escolakit/scheduler/internal/schedule"
)

// recurringLessonsRequest — тело запроса на разворачивание недельного правила
type recurringLessonsRequest struct {
	SubjectID       uuid.UUID              `json:"subject_id" validate:"required"`
	GroupID         uuid.UUID              `json:"group_id" validate:"required"`
	Weekday         schedule.WeekdayValue  `json:"weekday"`
	StartTime       string                 `json:"start_time" validate:"required"`
	DurationMinutes int                    `json:"duration_minutes" validate:"required"`
	RangeStart      string                 `json:"range_start" validate:"required"`
	RangeEnd        string                 `json:"range_end" validate:"required"`
	ExceptionDates  []string               `json:"exception_dates"`
}

// nonTeachingDayRequest — тело запроса на объявление неучебного дня
type nonTeachingDayRequest struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
}

// lessonResponse — занятие в ответах чтения
type lessonResponse struct {
	ID                int64   `json:"id"`
	GroupID           string  `json:"group_id"`
	SubjectID         string  `json:"subject_id"`
	Date              string  `json:"date"`
	StartTime         *string `json:"start_time"`
	DurationMinutes   *int    `json:"duration_minutes"`
	Completed         bool    `json:"completed"`
	AttendanceApplied bool    `json:"attendance_applied"`
	Content           *string `json:"content,omitempty"`
}

// nonTeachingDayResponse — неучебный день в ответах чтения
type nonTeachingDayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func lessonFromModel(l *model.Lesson) lessonResponse {
	resp := lessonResponse{
		ID:                l.ID,
		GroupID:           l.GroupID.String(),
		SubjectID:         l.SubjectID.String(),
		Date:              l.Date.Format("2006-01-02"),
		DurationMinutes:   l.DurationMinutes,
		Completed:         l.Completed,
		AttendanceApplied: l.AttendanceApplied,
		Content:           l.Content,
	}

	if l.StartHour != nil && l.StartMinute != nil {
		formatted := schedule.FormatClock(*l.StartHour, *l.StartMinute)
		resp.StartTime = &formatted
	}

	return resp
}

func nonTeachingDayFromModel(d *model.NonTeachingDay) nonTeachingDayResponse {
	return nonTeachingDayResponse{
		Date:        d.Day.Format("2006-01-02"),
		Description: d.Description,
	}
}
