package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RemovalService массово удаляет занятия предмета в диапазоне дат
type RemovalService struct {
	lessons LessonStore
	refs    ReferenceStore
	logger  *zap.Logger
}

// NewRemovalService создаёт новый сервис массового удаления
func NewRemovalService(lessons LessonStore, refs ReferenceStore, logger *zap.Logger) *RemovalService {
	return &RemovalService{
		lessons: lessons,
		refs:    refs,
		logger:  logger,
	}
}

// RemoveRange удаляет все занятия предмета с датой в [rangeStart, rangeEnd]
// по всем группам, независимо от завершённости и учёта посещаемости.
// Возвращает количество удалённых; ноль совпадений — успех
func (s *RemovalService) RemoveRange(ctx context.Context, subjectID uuid.UUID, rangeStart, rangeEnd string) (int64, error) {
	from, err := parseDate(rangeStart)
	if err != nil {
		return 0, err
	}

	to, err := parseDate(rangeEnd)
	if err != nil {
		return 0, err
	}

	if from.After(to) {
		return 0, NewValidationError("range start %s is after range end %s", rangeStart, rangeEnd)
	}

	exists, err := s.refs.SubjectExists(ctx, subjectID)
	if err != nil {
		return 0, storeFailure(fmt.Errorf("check subject: %w", err))
	}
	if !exists {
		return 0, &NotFoundError{Resource: "subject"}
	}

	removed, err := s.lessons.DeleteBySubjectAndRange(ctx, subjectID, from, to)
	if err != nil {
		return 0, storeFailure(fmt.Errorf("remove lessons: %w", err))
	}

	s.logger.Info("Lessons removed by subject and range",
		zap.String("subject_id", subjectID.String()),
		zap.String("range_start", rangeStart),
		zap.String("range_end", rangeEnd),
		zap.Int64("removed", removed),
	)

	return removed, nil
}
