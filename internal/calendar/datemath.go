package calendar

import "time"

const secondsPerDay = 24 * 60 * 60

// civil drops the time of day, keeping the calendar date in UTC so that
// differences are free of DST transitions.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in month m of year y.
func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func addWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*7)
}

// addMonths moves t by n months, clamping the day to the end of the target
// month instead of overflowing (Jan 31 + 1 month = Feb 28/29).
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(floorMod(total, 12) + 1)
	if last := daysInMonth(ty, tm); d > last {
		d = last
	}
	return time.Date(ty, tm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func addYears(t time.Time, n int) time.Time {
	return addMonths(t, n*12)
}

// diffCalendarDays counts calendar days from b to a.
func diffCalendarDays(a, b time.Time) int {
	return int((civil(a).Unix() - civil(b).Unix()) / secondsPerDay)
}

func diffCalendarWeeks(a, b time.Time, weekStart time.Weekday) int {
	return diffCalendarDays(startOfWeek(a, weekStart), startOfWeek(b, weekStart)) / 7
}

func diffCalendarMonths(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}

func diffCalendarYears(a, b time.Time) int {
	return a.Year() - b.Year()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return startOfDay(t).AddDate(0, 0, -back)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), daysInMonth(t.Year(), t.Month()), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func sameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
