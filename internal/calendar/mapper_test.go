package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-swipecal/internal/calendar"
)

func TestPageMapper_RoundTrip(t *testing.T) {
	references := []time.Time{
		date(2024, 3, 15),
		date(2024, 1, 31), // end of month clamping
		date(2024, 2, 29), // leap day
		time.Date(2023, 12, 31, 18, 30, 0, 0, time.Local),
	}

	for _, ref := range references {
		for _, g := range allGranularities {
			m := calendar.NewPageMapper(ref, calendar.IntervalFor(g, time.Sunday))
			for n := -500; n <= 500; n++ {
				if !assert.Equal(t, n, m.DateToPage(m.PageToDate(n)), "ref %s, granularity %s", ref, g) {
					return
				}
			}
		}
	}
}

func TestPageMapper_BoundSign(t *testing.T) {
	ref := date(2024, 6, 10)
	m := calendar.NewPageMapper(ref, calendar.IntervalFor(calendar.Month, time.Sunday))

	assert.Equal(t, -3, m.BoundIndex(date(2024, 3, 10), true), "3 months before the reference")
	assert.Equal(t, 4, m.BoundIndex(date(2024, 10, 1), false))
	assert.Equal(t, calendar.UnboundedMin, m.BoundIndex(time.Time{}, true))
	assert.Equal(t, calendar.UnboundedMax, m.BoundIndex(time.Time{}, false))
}

func TestPageMapper_Bounds_Scenario(t *testing.T) {
	m := calendar.NewPageMapper(date(2024, 3, 15), calendar.IntervalFor(calendar.Month, time.Sunday))

	minPage, maxPage := m.Bounds(date(2024, 1, 1), date(2024, 12, 1))
	assert.Equal(t, -2, minPage)
	assert.Equal(t, 9, maxPage)
}

func TestPageMapper_BoundsPerGranularity(t *testing.T) {
	ref := date(2024, 3, 15) // Friday
	tests := []struct {
		g        calendar.Granularity
		min, max int
	}{
		{calendar.Day, -14, 17},
		{calendar.Week, -2, 3},
		{calendar.Month, 0, 1},
		{calendar.Year, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			m := calendar.NewPageMapper(ref, calendar.IntervalFor(tt.g, time.Sunday))
			minPage, maxPage := m.Bounds(date(2024, 3, 1), date(2024, 4, 1))
			assert.Equal(t, tt.min, minPage)
			assert.Equal(t, tt.max, maxPage)
		})
	}
}
