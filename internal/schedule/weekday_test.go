package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"english lowercase", "friday", time.Friday, false},
		{"english mixed case", "Friday", time.Friday, false},
		{"english uppercase", "SUNDAY", time.Sunday, false},
		{"portuguese", "domingo", time.Sunday, false},
		{"portuguese with feira", "segunda-feira", time.Monday, false},
		{"portuguese accented", "terça", time.Tuesday, false},
		{"portuguese accented with feira", "Terça-Feira", time.Tuesday, false},
		{"portuguese folded accent", "sabado", time.Saturday, false},
		{"portuguese accented saturday", "sábado", time.Saturday, false},
		{"surrounding spaces", "  sexta  ", time.Friday, false},
		{"unknown name", "someday", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdayName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid weekday")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekdayNumber(t *testing.T) {
	for n := 0; n <= 6; n++ {
		got, err := ParseWeekdayNumber(n)
		require.NoError(t, err)
		assert.Equal(t, time.Weekday(n), got)
	}

	for _, n := range []int{-1, 7, 100} {
		_, err := ParseWeekdayNumber(n)
		require.Error(t, err)
	}
}

func TestWeekdayValueUnmarshalJSON(t *testing.T) {
	var w WeekdayValue
	require.NoError(t, json.Unmarshal([]byte(`5`), &w))
	got, err := w.Resolve()
	require.NoError(t, err)
	assert.Equal(t, time.Friday, got)

	require.NoError(t, json.Unmarshal([]byte(`"quarta-feira"`), &w))
	got, err = w.Resolve()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, got)

	require.Error(t, json.Unmarshal([]byte(`true`), &w))
}

func TestWeekdayValueUnsetResolve(t *testing.T) {
	var w WeekdayValue
	_, err := w.Resolve()
	require.Error(t, err)
}
