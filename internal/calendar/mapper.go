package calendar

import (
	"math"
	"time"
)

// Unbounded page sentinels used when no bound date is configured.
const (
	UnboundedMin = math.MinInt
	UnboundedMax = math.MaxInt
)

// PageMapper converts between page indices and dates relative to a fixed
// reference date (page 0).
type PageMapper struct {
	reference time.Time
	interval  Interval
}

// NewPageMapper returns a mapper for the given reference date and interval.
func NewPageMapper(reference time.Time, iv Interval) PageMapper {
	return PageMapper{reference: reference, interval: iv}
}

// Reference returns the date of page 0.
func (m PageMapper) Reference() time.Time {
	return m.reference
}

// Interval returns the arithmetic the mapper was built with.
func (m PageMapper) Interval() Interval {
	return m.interval
}

// PageToDate returns the date displayed by page.
func (m PageMapper) PageToDate(page int) time.Time {
	return m.interval.Add(m.reference, page)
}

// DateToPage returns the page displaying date. It is the exact inverse of
// PageToDate for every page.
func (m PageMapper) DateToPage(date time.Time) int {
	return m.interval.Diff(date, m.reference)
}

// BoundIndex converts a bound date to an inclusive page bound. A zero bound
// yields UnboundedMin (lower) or UnboundedMax (upper).
//
// Diff measures from its second argument to its first, while pages grow
// forward in time, so the distance from bound to reference is negated.
func (m PageMapper) BoundIndex(bound time.Time, lower bool) int {
	if bound.IsZero() {
		if lower {
			return UnboundedMin
		}
		return UnboundedMax
	}
	return m.interval.Diff(m.reference, bound) * -1
}

// Bounds returns the inclusive page range for the optional min and max dates.
func (m PageMapper) Bounds(minDate, maxDate time.Time) (int, int) {
	return m.BoundIndex(minDate, true), m.BoundIndex(maxDate, false)
}
