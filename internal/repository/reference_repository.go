package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/escolakit/scheduler/internal/repository/base"
)

// ReferenceRepository отвечает за справочные данные: предметы и группы.
// Их CRUD живёт в обвязке приложения, ядру нужны только проверки существования
type ReferenceRepository struct {
	*base.Repository
}

// NewReferenceRepository создаёт новый справочный репозиторий
func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{Repository: base.NewRepository(pool)}
}

// SubjectExists проверяет существование предмета
func (r *ReferenceRepository) SubjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.Exists(ctx, `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check subject exists: %w", err)
	}
	return exists, nil
}

// GroupExists проверяет существование группы
func (r *ReferenceRepository) GroupExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.Exists(ctx, `SELECT EXISTS(SELECT 1 FROM class_groups WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check group exists: %w", err)
	}
	return exists, nil
}
