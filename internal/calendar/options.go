package calendar

import "time"

// Options is the configuration surface of a calendar. Zero dates mean
// "not set".
type Options struct {
	// CurrentDate is the externally controlled displayed date. On the first
	// configuration it also becomes the reference date (page 0).
	CurrentDate  time.Time
	SelectedDate time.Time
	MinDate      time.Time
	MaxDate      time.Time

	// PageBuffer is the number of pages kept rendered on each side of the
	// current one. It is forwarded to the pager.
	PageBuffer int

	// Granularity defaults to Month.
	Granularity Granularity
	WeekStart   time.Weekday
	Theme       PartialTheme

	// Names localizes month and weekday names in headers and day labels;
	// nil means English.
	Names *Names

	GesturesDisabled bool

	OnPageChange func(firstDay time.Time)
	OnDateSelect func(date time.Time, info SelectInfo)

	// MonthProgress, when set, receives the month progress signal on every
	// pager frame.
	MonthProgress *ProgressCell
}

// PageOption tunes an imperative page command.
type PageOption func(*pageOptions)

type pageOptions struct {
	animated bool
}

// Animated overrides whether the command animates.
func Animated(animated bool) PageOption {
	return func(o *pageOptions) {
		o.animated = animated
	}
}

func resolvePageOptions(def bool, opts []PageOption) pageOptions {
	o := pageOptions{animated: def}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
