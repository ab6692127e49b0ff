package model

import (
	"time"

	"github.com/google/uuid"
)

// RecurrenceRule — провалидированное недельное правило генерации занятий.
// Живёт в пределах одного запроса и не сохраняется в базе
type RecurrenceRule struct {
	SubjectID       uuid.UUID
	GroupID         uuid.UUID
	Weekday         time.Weekday // 0 = Sunday, 6 = Saturday
	StartHour       int          // 0-23
	StartMinute     int          // 0-59
	DurationMinutes int
	RangeStart      time.Time
	RangeEnd        time.Time
	ExceptionDates  map[string]struct{} // ключ — дата в формате YYYY-MM-DD
}
