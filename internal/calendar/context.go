package calendar

import "time"

// SelectInfo accompanies a date selection.
type SelectInfo struct {
	IsSelected bool
}

// Context is the per-configuration view of a calendar shared with every
// renderer. It is built once per configuration pass and never mutated; a
// new pass produces a new Context.
type Context struct {
	Reference   time.Time
	Selected    time.Time // zero when nothing is selected
	Today       time.Time
	Granularity Granularity
	WeekStart   time.Weekday
	Theme       *Theme
	Names       *Names
	Interval    Interval
	Mapper      PageMapper

	// Select forwards a tap on a day to the host's selection callback.
	Select func(date time.Time)
}

// IsSelected reports whether date is the selected day.
func (c *Context) IsSelected(date time.Time) bool {
	return !c.Selected.IsZero() && sameDay(c.Selected, date)
}

// IsToday reports whether date is today.
func (c *Context) IsToday(date time.Time) bool {
	return sameDay(c.Today, date)
}
