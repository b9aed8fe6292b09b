package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b, div, mod int
	}{
		{7, 12, 0, 7},
		{-1, 12, -1, 11},
		{-12, 12, -1, 0},
		{-13, 12, -2, 11},
		{24, 12, 2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.div, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.mod, floorMod(tt.a, tt.b), "floorMod(%d, %d)", tt.a, tt.b)
	}
}

func TestAddMonths_ClampsAndKeepsClock(t *testing.T) {
	in := time.Date(2024, 3, 31, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 4, 30, 14, 30, 0, 0, time.UTC), addMonths(in, 1))
	assert.Equal(t, time.Date(2023, 2, 28, 14, 30, 0, 0, time.UTC), addMonths(in, -13))
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), addYears(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 4))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), addYears(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 1))
}

func TestDiffCalendarDays_FarDates(t *testing.T) {
	a := time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 219146, diffCalendarDays(a, b))
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, 29, endOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Day())
	assert.Equal(t, 28, endOfMonth(time.Date(2100, 2, 10, 0, 0, 0, 0, time.UTC)).Day())
}
