package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/escolakit/scheduler/internal/model"
)

// LessonStore — хранилище занятий. Реализуется repository.LessonRepository
type LessonStore interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByGroupAndDate(ctx context.Context, groupID uuid.UUID, date time.Time) ([]*model.Lesson, error)
	GetByDate(ctx context.Context, date time.Time) ([]*model.Lesson, error)
	GetByGroupAndRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*model.Lesson, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySubjectAndRange(ctx context.Context, subjectID uuid.UUID, from, to time.Time) (int64, error)
}

// NonTeachingDayStore — хранилище неучебных дней
type NonTeachingDayStore interface {
	Create(ctx context.Context, day *model.NonTeachingDay) error
	GetAll(ctx context.Context) ([]*model.NonTeachingDay, error)
}

// ReferenceStore — проверки существования справочных сущностей
type ReferenceStore interface {
	SubjectExists(ctx context.Context, id uuid.UUID) (bool, error)
	GroupExists(ctx context.Context, id uuid.UUID) (bool, error)
}
