package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/model"
	"github.com/escolakit/scheduler/internal/repository/base"
)

const lessonColumns = `id, group_id, subject_id, lesson_date, start_hour, start_minute, duration_minutes, completed, attendance_applied, content, created_at, updated_at`

// LessonRepository управляет занятиями в базе данных
type LessonRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewLessonRepository создаёт новый репозиторий занятий
func NewLessonRepository(pool *pgxpool.Pool, logger *zap.Logger) *LessonRepository {
	return &LessonRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт новое занятие
func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
		INSERT INTO lessons (group_id, subject_id, lesson_date, start_hour, start_minute, duration_minutes, completed, attendance_applied, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		lesson.GroupID,
		lesson.SubjectID,
		lesson.Date,
		lesson.StartHour,
		lesson.StartMinute,
		lesson.DurationMinutes,
		lesson.Completed,
		lesson.AttendanceApplied,
		lesson.Content,
	).Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}

	return nil
}

// GetByID получает занятие по ID
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	lesson := &model.Lesson{}
	err := scanLesson(r.QueryRow(ctx, query, id), lesson)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson by id: %w", err)
	}

	return lesson, nil
}

// GetByGroupAndDate получает занятия группы на конкретную дату
func (r *LessonRepository) GetByGroupAndDate(ctx context.Context, groupID uuid.UUID, date time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE group_id = $1 AND lesson_date = $2
		ORDER BY start_hour NULLS LAST, start_minute NULLS LAST, id
	`

	rows, err := r.Query(ctx, query, groupID, date)
	if err != nil {
		return nil, fmt.Errorf("get lessons by group and date: %w", err)
	}
	defer rows.Close()

	return collectLessons(rows)
}

// GetByDate получает все занятия на дату по всем группам
func (r *LessonRepository) GetByDate(ctx context.Context, date time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE lesson_date = $1
		ORDER BY group_id, start_hour NULLS LAST, start_minute NULLS LAST, id
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get lessons by date: %w", err)
	}
	defer rows.Close()

	return collectLessons(rows)
}

// GetByGroupAndRange получает занятия группы за период
func (r *LessonRepository) GetByGroupAndRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE group_id = $1 AND lesson_date BETWEEN $2 AND $3
		ORDER BY lesson_date, start_hour NULLS LAST, start_minute NULLS LAST, id
	`

	rows, err := r.Query(ctx, query, groupID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get lessons by group and range: %w", err)
	}
	defer rows.Close()

	return collectLessons(rows)
}

// Delete удаляет занятие по ID
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// DeleteBySubjectAndRange удаляет занятия предмета в диапазоне дат по всем
// группам и возвращает количество удалённых строк
func (r *LessonRepository) DeleteBySubjectAndRange(ctx context.Context, subjectID uuid.UUID, from, to time.Time) (int64, error) {
	query := `DELETE FROM lessons WHERE subject_id = $1 AND lesson_date BETWEEN $2 AND $3`

	affected, err := r.ExecAffected(ctx, query, subjectID, from, to)
	if err != nil {
		return 0, fmt.Errorf("delete lessons by subject and range: %w", err)
	}

	return affected, nil
}

// scanLesson читает одну строку занятия
func scanLesson(row pgx.Row, lesson *model.Lesson) error {
	return row.Scan(
		&lesson.ID,
		&lesson.GroupID,
		&lesson.SubjectID,
		&lesson.Date,
		&lesson.StartHour,
		&lesson.StartMinute,
		&lesson.DurationMinutes,
		&lesson.Completed,
		&lesson.AttendanceApplied,
		&lesson.Content,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
}

// collectLessons вычитывает все строки курсора
func collectLessons(rows pgx.Rows) ([]*model.Lesson, error) {
	var lessons []*model.Lesson
	for rows.Next() {
		lesson := &model.Lesson{}
		if err := scanLesson(rows, lesson); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}
