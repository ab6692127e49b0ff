package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeeklyFridays(t *testing.T) {
	// 2024-03-01 — пятница
	got := Expand(time.Friday, date(2024, 3, 1), date(2024, 3, 22))

	require.Len(t, got, 4)
	assert.Equal(t, date(2024, 3, 1), got[0])
	assert.Equal(t, date(2024, 3, 8), got[1])
	assert.Equal(t, date(2024, 3, 15), got[2])
	assert.Equal(t, date(2024, 3, 22), got[3])
}

func TestExpandStartsMidWeek(t *testing.T) {
	// Диапазон начинается в пятницу, ищем понедельники
	got := Expand(time.Monday, date(2024, 3, 1), date(2024, 3, 31))

	require.Len(t, got, 4)
	assert.Equal(t, date(2024, 3, 4), got[0])
	assert.Equal(t, date(2024, 3, 25), got[3])

	for _, d := range got {
		assert.Equal(t, time.Monday, d.Weekday())
	}
}

func TestExpandSingleDayRange(t *testing.T) {
	// 2024-03-15 — пятница
	got := Expand(time.Friday, date(2024, 3, 15), date(2024, 3, 15))
	require.Len(t, got, 1)
	assert.Equal(t, date(2024, 3, 15), got[0])
}

func TestExpandNoOccurrence(t *testing.T) {
	// Суббота и воскресенье, вторника в диапазоне нет
	got := Expand(time.Tuesday, date(2024, 3, 16), date(2024, 3, 17))
	assert.Empty(t, got)
}

func TestExpandFullYear(t *testing.T) {
	got := Expand(time.Wednesday, date(2024, 1, 1), date(2024, 12, 31))

	assert.Len(t, got, 52)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 7*24*time.Hour, got[i].Sub(got[i-1]))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"back to back do not overlap", 10 * 60, 11 * 60, 11 * 60, 12 * 60, false},
		{"partial overlap", 10 * 60, 11 * 60, 10*60 + 30, 11*60 + 30, true},
		{"identical windows", 10 * 60, 11 * 60, 10 * 60, 11 * 60, true},
		{"contained window", 9 * 60, 12 * 60, 10 * 60, 11 * 60, true},
		{"disjoint", 8 * 60, 9 * 60, 10 * 60, 11 * 60, false},
		{"touching before", 9 * 60, 10 * 60, 8 * 60, 9 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
