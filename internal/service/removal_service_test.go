package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRemoveRangeDeletesMatchingLessons(t *testing.T) {
	lessons := newFakeLessonStore()

	// 12 занятий предмета в 2024 году по двум группам
	for month := 1; month <= 12; month++ {
		group := testGroupID
		if month%2 == 0 {
			group = otherGroupID
		}
		lessons.seed(group, testSubjectID, time.Date(2024, time.Month(month), 10, 0, 0, 0, 0, time.UTC), 9, 0, 45)
	}
	// Посторонние занятия: другой предмет и другой год
	otherSubject := uuid.New()
	lessons.seed(testGroupID, otherSubject, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 9, 0, 45)
	lessons.seed(testGroupID, testSubjectID, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 9, 0, 45)

	svc := NewRemovalService(lessons, newFakeRefStore(testSubjectID, testGroupID), zap.NewNop())

	removed, err := svc.RemoveRange(context.Background(), testSubjectID, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
	assert.Len(t, lessons.lessons, 2)
}

func TestRemoveRangeZeroMatchesIsSuccess(t *testing.T) {
	svc := NewRemovalService(newFakeLessonStore(), newFakeRefStore(testSubjectID, testGroupID), zap.NewNop())

	removed, err := svc.RemoveRange(context.Background(), testSubjectID, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestRemoveRangeValidation(t *testing.T) {
	svc := NewRemovalService(newFakeLessonStore(), newFakeRefStore(testSubjectID, testGroupID), zap.NewNop())

	var validationErr *ValidationError

	_, err := svc.RemoveRange(context.Background(), testSubjectID, "2024-12-31", "2024-01-01")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.RemoveRange(context.Background(), testSubjectID, "bad", "2024-01-01")
	require.ErrorAs(t, err, &validationErr)
}

func TestRemoveRangeUnknownSubject(t *testing.T) {
	svc := NewRemovalService(newFakeLessonStore(), newFakeRefStore(testSubjectID, testGroupID), zap.NewNop())

	_, err := svc.RemoveRange(context.Background(), uuid.New(), "2024-01-01", "2024-12-31")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestRemoveRangeInfrastructureFailure(t *testing.T) {
	lessons := newFakeLessonStore()
	lessons.deleteRangeErr = &pgconn.PgError{Code: "42P01", Message: "relation \"lessons\" does not exist"}

	svc := NewRemovalService(lessons, newFakeRefStore(testSubjectID, testGroupID), zap.NewNop())

	_, err := svc.RemoveRange(context.Background(), testSubjectID, "2024-01-01", "2024-12-31")

	var infraErr *InfrastructureError
	require.ErrorAs(t, err, &infraErr)
}
