package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson представляет конкретное занятие группы по предмету на дату.
// Создаётся планировщиком, позже мутируется учётом посещаемости и
// записью пройденного материала
type Lesson struct {
	ID                int64     `json:"id"`
	GroupID           uuid.UUID `json:"group_id"`
	SubjectID         uuid.UUID `json:"subject_id"`
	Date              time.Time `json:"date"` // только дата, без времени
	StartHour         *int      `json:"start_hour"`       // 0-23, может отсутствовать
	StartMinute       *int      `json:"start_minute"`     // 0-59, может отсутствовать
	DurationMinutes   *int      `json:"duration_minutes"` // может отсутствовать
	Completed         bool      `json:"completed"`
	AttendanceApplied bool      `json:"attendance_applied"`
	Content           *string   `json:"content"` // пройденный материал
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasTimeWindow сообщает, задано ли у занятия время и длительность.
// Занятия без временного окна не участвуют в проверке пересечений
func (l *Lesson) HasTimeWindow() bool {
	return l.StartHour != nil && l.StartMinute != nil && l.DurationMinutes != nil
}

// StartMinutes возвращает начало занятия в минутах с полуночи.
// Вызывать только при HasTimeWindow() == true
func (l *Lesson) StartMinutes() int {
	return *l.StartHour*60 + *l.StartMinute
}
