// Package markers loads dated annotations (calendar events and contact
// birthdays) that decorate calendar days and fill the agenda.
package markers

import (
	"sort"
	"time"

	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// Kind tells where a marker comes from.
type Kind int

const (
	KindEvent Kind = iota
	KindBirthday
)

// Marker is one dated occurrence.
type Marker struct {
	// Date is local midnight of the day the marker falls on.
	Date  time.Time
	Title string
	Kind  Kind

	// Age is the age reached on Date, for birthdays with a known year.
	Age       int
	YearKnown bool
}

// Set indexes markers by calendar day. A Set is immutable once built and
// safe for concurrent reads.
type Set struct {
	byDay map[string][]Marker
	all   []Marker
}

// NewSet indexes ms. The input slice is not retained.
func NewSet(ms []Marker) *Set {
	s := &Set{
		byDay: make(map[string][]Marker, len(ms)),
		all:   make([]Marker, len(ms)),
	}
	copy(s.all, ms)
	sort.SliceStable(s.all, func(i, j int) bool {
		if !s.all[i].Date.Equal(s.all[j].Date) {
			return s.all[i].Date.Before(s.all[j].Date)
		}
		return s.all[i].Title < s.all[j].Title
	})
	for _, m := range s.all {
		k := dayKey(m.Date)
		s.byDay[k] = append(s.byDay[k], m)
	}
	return s
}

func dayKey(t time.Time) string {
	return calendar.Format(t, config.FormatDayKey)
}

// Len returns the number of markers.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.all)
}

// On returns the markers of the day containing t.
func (s *Set) On(t time.Time) []Marker {
	return s.OnKey(dayKey(t))
}

// OnKey returns the markers of the day with the given yyyy-MM-dd key.
func (s *Set) OnKey(key string) []Marker {
	if s == nil {
		return nil
	}
	return s.byDay[key]
}

// Between returns the markers dated in [from, to], in date order.
func (s *Set) Between(from, to time.Time) []Marker {
	if s == nil {
		return nil
	}
	lo := sort.Search(len(s.all), func(i int) bool { return !s.all[i].Date.Before(from) })
	hi := sort.Search(len(s.all), func(i int) bool { return s.all[i].Date.After(to) })
	if lo >= hi {
		return nil
	}
	out := make([]Marker, hi-lo)
	copy(out, s.all[lo:hi])
	return out
}
