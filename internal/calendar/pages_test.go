package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-swipecal/internal/calendar"
)

func newContext(t *testing.T, g calendar.Granularity, opts calendar.Options) *calendar.Context {
	t.Helper()
	opts.Granularity = g
	if opts.CurrentDate.IsZero() {
		opts.CurrentDate = date(2024, 3, 15)
	}
	c := calendar.New(opts, MockClock{CurrentTime: date(2024, 3, 12)})
	return c.Context()
}

func TestContext_MonthPage(t *testing.T) {
	ctx := newContext(t, calendar.Month, calendar.Options{SelectedDate: date(2024, 3, 20)})
	p := ctx.Page(0)

	assert.Equal(t, "March 2024", p.Header)
	assert.Equal(t, []string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}, p.DayLabels)
	require.Len(t, p.Weeks, 6, "March 2024 spans six Sunday-started weeks")

	first := p.Weeks[0][0]
	assert.Equal(t, date(2024, 2, 25), first.Date)
	assert.False(t, first.InDisplayedMonth)
	assert.Equal(t, "2024-02-25", first.Key)
	assert.Equal(t, "25", first.Text)

	var selected, today []string
	for _, d := range p.Days() {
		if d.Selected {
			selected = append(selected, d.Key)
		}
		if d.Today {
			today = append(today, d.Key)
		}
	}
	assert.Equal(t, []string{"2024-03-20"}, selected)
	assert.Equal(t, []string{"2024-03-12"}, today)

	assert.Equal(t, "May 2024", ctx.Page(2).Header)
	assert.Equal(t, "January 2023", ctx.Page(-14).Header)
}

func TestContext_MonthPageWeekStart(t *testing.T) {
	ctx := newContext(t, calendar.Month, calendar.Options{WeekStart: time.Monday})
	p := ctx.Page(0)

	assert.Equal(t, "MO", p.DayLabels[0])
	assert.Equal(t, date(2024, 2, 26), p.Weeks[0][0].Date)
	assert.Len(t, p.Weeks, 5)
}

func TestContext_WeekPage(t *testing.T) {
	ctx := newContext(t, calendar.Week, calendar.Options{})

	p := ctx.Page(0)
	require.Len(t, p.Weeks, 1)
	require.Len(t, p.Weeks[0], 7)
	assert.Equal(t, date(2024, 3, 10), p.Start)
	assert.Equal(t, date(2024, 3, 16), p.End)
	assert.Equal(t, "March 2024", p.Header)

	// Mar 31 - Apr 6: most of the week is in April.
	p = ctx.Page(3)
	assert.Equal(t, date(2024, 3, 31), p.Start)
	assert.Equal(t, "April 2024", p.Header)
	assert.False(t, p.Weeks[0][0].InDisplayedMonth)
}

func TestContext_DayPage(t *testing.T) {
	ctx := newContext(t, calendar.Day, calendar.Options{})

	p := ctx.Page(0)
	assert.Equal(t, "Friday, March 15, 2024", p.Header)
	assert.Equal(t, []string{"FRIDAY"}, p.DayLabels)
	require.Len(t, p.Days(), 1)
	assert.True(t, p.Days()[0].InDisplayedMonth)

	assert.Equal(t, "Monday, March 18, 2024", ctx.Page(3).Header)
}

func TestContext_YearPage(t *testing.T) {
	ctx := newContext(t, calendar.Year, calendar.Options{})

	p := ctx.Page(1)
	assert.Equal(t, "2025", p.Header)
	assert.Equal(t, date(2025, 1, 1), p.FirstOfMonth)
}

func TestContext_HeaderOverrides(t *testing.T) {
	ctx := newContext(t, calendar.Month, calendar.Options{
		Theme: calendar.PartialTheme{
			HeaderDateFormat:    calendar.Ptr("MMM ''yy"),
			HeaderTextTransform: calendar.Ptr("uppercase"),
		},
	})
	assert.Equal(t, "MAR '24", ctx.Page(0).Header)
}
