package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/model"
	"github.com/escolakit/scheduler/internal/repository/base"
)

// NonTeachingDayRepository управляет неучебными днями в базе данных
type NonTeachingDayRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewNonTeachingDayRepository создаёт новый репозиторий неучебных дней
func NewNonTeachingDayRepository(pool *pgxpool.Pool, logger *zap.Logger) *NonTeachingDayRepository {
	return &NonTeachingDayRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт неучебный день
func (r *NonTeachingDayRepository) Create(ctx context.Context, day *model.NonTeachingDay) error {
	query := `
		INSERT INTO non_teaching_days (day, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, day.Day, day.Description).Scan(&day.ID, &day.CreatedAt)
	if err != nil {
		return fmt.Errorf("create non-teaching day: %w", err)
	}

	return nil
}

// GetByDay получает неучебный день по дате
func (r *NonTeachingDayRepository) GetByDay(ctx context.Context, day time.Time) (*model.NonTeachingDay, error) {
	query := `
		SELECT id, day, description, created_at
		FROM non_teaching_days
		WHERE day = $1
	`

	ntd := &model.NonTeachingDay{}
	err := r.QueryRow(ctx, query, day).Scan(&ntd.ID, &ntd.Day, &ntd.Description, &ntd.CreatedAt)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get non-teaching day: %w", err)
	}

	return ntd, nil
}

// GetAll получает все неучебные дни по возрастанию даты
func (r *NonTeachingDayRepository) GetAll(ctx context.Context) ([]*model.NonTeachingDay, error) {
	query := `
		SELECT id, day, description, created_at
		FROM non_teaching_days
		ORDER BY day
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get non-teaching days: %w", err)
	}
	defer rows.Close()

	var days []*model.NonTeachingDay
	for rows.Next() {
		ntd := &model.NonTeachingDay{}
		if err := rows.Scan(&ntd.ID, &ntd.Day, &ntd.Description, &ntd.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan non-teaching day: %w", err)
		}
		days = append(days, ntd)
	}

	return days, nil
}
