package markers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// Window is the inclusive year range occurrences are generated for.
type Window struct {
	FromYear int
	ToYear   int
}

// WindowAround returns the years before and after now's year, as configured
// by config.MarkerWindowYears.
func WindowAround(now time.Time) Window {
	return Window{
		FromYear: now.Year() - config.MarkerWindowYears,
		ToYear:   now.Year() + config.MarkerWindowYears,
	}
}

func (w Window) start(loc *time.Location) time.Time {
	return time.Date(w.FromYear, time.January, 1, 0, 0, 0, 0, loc)
}

func (w Window) end(loc *time.Location) time.Time {
	return time.Date(w.ToYear, time.December, 31, 23, 59, 59, 0, loc)
}

// TitleFunc builds the title of a birthday marker.
type TitleFunc func(name string, age int, yearKnown bool) string

// DefaultBirthdayTitle is used when no localized TitleFunc is supplied.
func DefaultBirthdayTitle(name string, _ int, _ bool) string {
	return fmt.Sprintf(config.FormatBirthdayTitle, name)
}

// DecodeICS reads every VEVENT of an iCalendar stream. Recurring events are
// expanded inside w; other events yield their start day.
func DecodeICS(ctx context.Context, r io.Reader, w Window, loc *time.Location) ([]Marker, error) {
	dec := ical.NewDecoder(r)
	var out []Marker

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrICalParse, err)
		}

		for _, ev := range cal.Events() {
			out = append(out, eventMarkers(ev, w, loc)...)
		}
	}
	return out, nil
}

func eventMarkers(ev ical.Event, w Window, loc *time.Location) []Marker {
	title, _ := ev.Props.Text(config.PropSummary)
	if title == "" {
		title = config.FallbackMarkerTitle
	}

	start, err := ev.DateTimeStart(loc)
	if err != nil || start.IsZero() {
		slog.Debug(config.MsgSkippedEvent,
			config.LogKeyComponent, config.CompMarkers,
			config.LogKeyValue, title)
		return nil
	}

	days := []time.Time{start}
	set, err := ev.RecurrenceSet(loc)
	if err != nil {
		slog.Debug(config.MsgSkippedRule,
			config.LogKeyComponent, config.CompMarkers,
			config.LogKeyValue, title,
			config.LogKeyError, err)
	} else if set != nil {
		days = set.Between(w.start(loc), w.end(loc), true)
	}

	out := make([]Marker, 0, len(days))
	for _, d := range days {
		y, m, dd := d.In(loc).Date()
		out = append(out, Marker{
			Date:  time.Date(y, m, dd, 0, 0, 0, 0, loc),
			Title: title,
			Kind:  KindEvent,
		})
	}
	return out
}

// DecodeVCard reads a vCard stream and yields one birthday marker per year
// of w, skipping years before a known birth year. Malformed cards are
// skipped.
func DecodeVCard(ctx context.Context, r io.Reader, w Window, loc *time.Location, title TitleFunc) ([]Marker, error) {
	if title == nil {
		title = DefaultBirthdayTitle
	}
	dec := vcard.NewDecoder(r)
	var out []Marker
	failures := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if failures++; failures >= config.MaxCardErrors {
				return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompMarkers,
				config.LogKeyError, err)
			continue
		}
		failures = 0

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}
		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompMarkers,
				config.LogKeyValue, bday.Value)
			continue
		}

		name := config.FallbackMarkerTitle
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		for y := w.FromYear; y <= w.ToYear; y++ {
			if yearKnown && y < birth.Year() {
				continue
			}
			age := 0
			if yearKnown {
				age = y - birth.Year()
			}
			out = append(out, Marker{
				// Feb 29 falls on Mar 1 in common years.
				Date:      time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, loc),
				Title:     title(name, age, yearKnown),
				Kind:      KindBirthday,
				Age:       age,
				YearKnown: yearKnown,
			})
		}
	}
	return out, nil
}

// parseDate handles the vCard BDAY formats, with and without a year.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// --MM-DD forms: a leap year keeps Feb 29 valid.
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
