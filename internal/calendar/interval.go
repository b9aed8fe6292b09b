package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Granularity is the calendar unit one page represents. The zero value is
// Month.
type Granularity int

const (
	Month Granularity = iota
	Day
	Week
	Year
)

// String returns the configuration name of the granularity.
func (g Granularity) String() string {
	switch g {
	case Day:
		return config.GranularityDay
	case Week:
		return config.GranularityWeek
	case Month:
		return config.GranularityMonth
	case Year:
		return config.GranularityYear
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// Valid reports whether g is one of the supported granularities.
func (g Granularity) Valid() bool {
	return g >= Month && g <= Year
}

// ParseGranularity converts a configuration name ("day", "week", "month",
// "year") to a Granularity. An empty name yields the default.
func ParseGranularity(name string) (Granularity, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = config.DefaultGranularity
	}
	switch key {
	case config.GranularityDay:
		return Day, nil
	case config.GranularityWeek:
		return Week, nil
	case config.GranularityMonth:
		return Month, nil
	case config.GranularityYear:
		return Year, nil
	}
	return 0, fmt.Errorf("%s: %q", config.ErrUnsupportedGranularity, name)
}

// UnmarshalText lets Granularity be decoded from YAML and flags.
func (g *Granularity) UnmarshalText(text []byte) error {
	parsed, err := ParseGranularity(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g Granularity) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, errors.New(config.ErrUnsupportedGranularity)
	}
	return []byte(g.String()), nil
}

// Interval bundles the date arithmetic for one granularity.
//
// Diff returns the signed distance from b to a in whole periods, Same reports
// whether both dates fall in the same period and Add moves a date by n
// periods. Diff(a, b) == 0 exactly when Same(a, b).
type Interval struct {
	Granularity    Granularity
	WeekStart      time.Weekday
	HeaderFormat   string
	DayLabelFormat string

	Diff    func(a, b time.Time) int
	Same    func(a, b time.Time) bool
	Add     func(t time.Time, n int) time.Time
	StartOf func(t time.Time) time.Time
}

type intervalFuncs struct {
	diff  func(a, b time.Time) int
	same  func(a, b time.Time) bool
	add   func(t time.Time, n int) time.Time
	start func(t time.Time) time.Time
}

type intervalEntry struct {
	headerFormat   string
	dayLabelFormat string
	build          func(ws time.Weekday) intervalFuncs
}

var intervalTable = [...]intervalEntry{
	Day: {
		headerFormat:   config.FormatHeaderDay,
		dayLabelFormat: config.FormatDayLabelDay,
		build: func(time.Weekday) intervalFuncs {
			return intervalFuncs{diffCalendarDays, sameDay, addDays, startOfDay}
		},
	},
	Week: {
		headerFormat:   config.FormatHeaderMonth,
		dayLabelFormat: config.FormatDayLabelWeek,
		build: func(ws time.Weekday) intervalFuncs {
			diff := func(a, b time.Time) int { return diffCalendarWeeks(a, b, ws) }
			same := func(a, b time.Time) bool { return startOfWeek(a, ws).Equal(startOfWeek(b, ws)) }
			start := func(t time.Time) time.Time { return startOfWeek(t, ws) }
			return intervalFuncs{diff, same, addWeeks, start}
		},
	},
	Month: {
		headerFormat:   config.FormatHeaderMonth,
		dayLabelFormat: config.FormatDayLabelWeek,
		build: func(time.Weekday) intervalFuncs {
			return intervalFuncs{diffCalendarMonths, sameMonth, addMonths, startOfMonth}
		},
	},
	Year: {
		headerFormat:   config.FormatHeaderYear,
		dayLabelFormat: config.FormatDayLabelWeek,
		build: func(time.Weekday) intervalFuncs {
			return intervalFuncs{diffCalendarYears, sameYear, addYears, startOfYear}
		},
	},
}

// IntervalFor builds the arithmetic for g. It is meant to be called once per
// configuration change; the returned functions do not branch on g.
//
// It panics when g or weekStart is out of range: both are programmer errors
// that would otherwise silently display the wrong period.
func IntervalFor(g Granularity, weekStart time.Weekday) Interval {
	if !g.Valid() {
		panic(fmt.Sprintf("%s: %v", config.ErrUnsupportedGranularity, g))
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		panic(fmt.Sprintf("%s: %d", config.ErrWeekStart, int(weekStart)))
	}

	e := intervalTable[g]
	fns := e.build(weekStart)
	return Interval{
		Granularity:    g,
		WeekStart:      weekStart,
		HeaderFormat:   e.headerFormat,
		DayLabelFormat: e.dayLabelFormat,
		Diff:           fns.diff,
		Same:           fns.same,
		Add:            fns.add,
		StartOf:        fns.start,
	}
}
