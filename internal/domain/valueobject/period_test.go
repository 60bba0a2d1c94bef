package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Period
		wantErr bool
	}{
		{name: "january", input: "2025-01", want: Period{Year: 2025, Month: time.January}},
		{name: "december", input: "2024-12", want: Period{Year: 2024, Month: time.December}},
		{name: "month out of range", input: "2025-13", wantErr: true},
		{name: "full date", input: "2025-01-02", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := NewPeriod(2025, time.March)

	assert.True(t, p.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousInYear(t *testing.T) {
	assert.Equal(t, NewPeriod(2025, time.February), NewPeriod(2025, time.March).PreviousInYear())

	prev := NewPeriod(2025, time.January).PreviousInYear()
	assert.False(t, prev.Valid())
	assert.False(t, prev.Contains(time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, prev.Contains(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodBounds(t *testing.T) {
	p := NewPeriod(2024, time.December)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.End())
}

func TestClampDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int
	}{
		{name: "valid day", year: 2025, month: time.April, day: 15, want: 15},
		{name: "31 in april", year: 2025, month: time.April, day: 31, want: 30},
		{name: "31 in february", year: 2025, month: time.February, day: 31, want: 28},
		{name: "29 in leap february", year: 2024, month: time.February, day: 29, want: 29},
		{name: "zero day", year: 2025, month: time.May, day: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDay(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.want, got.Day())
			assert.Equal(t, tt.month, got.Month())
		})
	}
}
