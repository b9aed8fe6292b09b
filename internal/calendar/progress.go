package calendar

import (
	"math"
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Month progress tables for a fixed 365-day year. They are built once per
// process and only read afterwards.
var (
	progressMonthDays = [config.MonthsPerYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// progressMonthStart[m] is the number of days elapsed before month m;
	// progressMonthStart[12] == 365.
	progressMonthStart [config.MonthsPerYear + 1]int

	// progressDayMonth maps a zero-based day of year to monthIndex plus the
	// fraction of that month already elapsed.
	progressDayMonth [config.ProgressYearDays]float64
)

func init() {
	for m, days := range progressMonthDays {
		progressMonthStart[m+1] = progressMonthStart[m] + days
		for d := 0; d < days; d++ {
			progressDayMonth[progressMonthStart[m]+d] = float64(m) + float64(d)/float64(days)
		}
	}
}

// ProgressInput carries the plain values the frame derivation needs. It is
// captured when the calendar is configured and copied into the frame
// callback, so the derivation never touches configuration state.
type ProgressInput struct {
	Granularity Granularity

	// InitialMonth is the zero-based month of the reference date.
	InitialMonth int

	// InitialDayOfYear is the zero-based day of year, in the fixed 365-day
	// year, of the reference date (day pages) or of the first day of its
	// week (week pages).
	InitialDayOfYear int
}

// NewProgressInput captures the reference date values for g.
func NewProgressInput(reference time.Time, g Granularity, weekStart time.Weekday) ProgressInput {
	in := ProgressInput{
		Granularity:  g,
		InitialMonth: int(reference.Month()) - 1,
	}
	switch g {
	case Day:
		in.InitialDayOfYear = progressDayOfYear(reference)
	case Week:
		start := startOfWeek(reference, weekStart)
		in.InitialDayOfYear = progressDayOfYear(start)
		if start.Year() < reference.Year() {
			in.InitialDayOfYear -= config.ProgressYearDays
		}
	}
	return in
}

// progressDayOfYear places t in the fixed 365-day year. Feb 29 shares the
// position of Feb 28.
func progressDayOfYear(t time.Time) int {
	m := int(t.Month()) - 1
	d := t.Day() - 1
	if d >= progressMonthDays[m] {
		d = progressMonthDays[m] - 1
	}
	return progressMonthStart[m] + d
}

// MonthProgress maps a fractional page offset to a position in [0, 12)
// through the year: 0 is the start of January, 11.5 the middle of December.
//
// Month pages map one to one. Day and week pages go through the day-of-year
// table of a 365-day year, so leap years drift by a day and month boundaries
// are approximate.
func MonthProgress(offset float64, in ProgressInput) float64 {
	var raw float64
	switch in.Granularity {
	case Day:
		raw = monthAtDay(offset + float64(in.InitialDayOfYear))
	case Week:
		raw = monthAtDay(offset*config.DaysPerWeek + config.ProgressMidWeek + float64(in.InitialDayOfYear))
	case Year:
		raw = offset*config.MonthsPerYear + float64(in.InitialMonth)
	default:
		raw = offset + float64(in.InitialMonth)
	}
	return wrapMonths(raw)
}

// monthAtDay converts a fractional day of year to a fractional month.
func monthAtDay(day float64) float64 {
	whole := math.Floor(day)
	idx := floorMod(int(whole), config.ProgressYearDays)
	pos := progressDayMonth[idx]
	return pos + (day-whole)/float64(progressMonthDays[int(pos)])
}

// wrapMonths reduces v into [0, 12).
func wrapMonths(v float64) float64 {
	mod := math.Mod(v, config.MonthsPerYear)
	if mod < 0 {
		mod += config.MonthsPerYear
	}
	if mod >= config.MonthsPerYear {
		mod = 0
	}
	return mod
}

// ProgressDeriver returns the frame callback that writes MonthProgress for
// in to out.
func ProgressDeriver(in ProgressInput, out *ProgressCell) func(offset float64) {
	return func(offset float64) {
		out.Store(MonthProgress(offset, in))
	}
}
