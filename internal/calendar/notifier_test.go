package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-swipecal/internal/calendar"
)

func TestNotifier_PageChanged(t *testing.T) {
	tests := []struct {
		name string
		g    calendar.Granularity
		page int
		want time.Time
	}{
		{"Day", calendar.Day, 3, date(2024, 3, 18)},
		{"Week", calendar.Week, 1, date(2024, 3, 17)},
		{"Month", calendar.Month, -2, date(2024, 1, 1)},
		{"Year", calendar.Year, 1, date(2025, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper := calendar.NewPageMapper(date(2024, 3, 15), calendar.IntervalFor(tt.g, time.Sunday))
			committed := &calendar.PageCell{}
			var got []time.Time
			cb := calendar.NewRef(func(d time.Time) { got = append(got, d) })

			n := calendar.NewNotifier(func() calendar.PageMapper { return mapper }, committed, cb)
			n.PageChanged(tt.page)

			assert.Equal(t, tt.page, committed.Load())
			assert.Equal(t, []time.Time{tt.want}, got)
		})
	}
}

func TestNotifier_UsesLatestCallback(t *testing.T) {
	mapper := calendar.NewPageMapper(date(2024, 3, 15), calendar.IntervalFor(calendar.Month, time.Sunday))
	cb := &calendar.Ref[func(time.Time)]{}
	n := calendar.NewNotifier(func() calendar.PageMapper { return mapper }, &calendar.PageCell{}, cb)

	// No callback yet: nothing to call.
	assert.NotPanics(t, func() { n.PageChanged(1) })

	var first, second int
	cb.Store(func(time.Time) { first++ })
	n.PageChanged(2)
	cb.Store(func(time.Time) { second++ })
	n.PageChanged(3)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
