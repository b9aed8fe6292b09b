package markers_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-swipecal/internal/markers"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:one@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"SUMMARY:Dentist\r\n" +
	"DTSTART;VALUE=DATE:20240320\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:two@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"DTSTART:20240304T090000Z\r\n" +
	"RRULE:FREQ=WEEKLY;COUNT=3\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:three@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240401\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

var window2024 = markers.Window{FromYear: 2023, ToYear: 2025}

func titles(ms []markers.Marker) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Date.Format("2006-01-02")+" "+m.Title)
	}
	return out
}

func TestDecodeICS(t *testing.T) {
	ms, err := markers.DecodeICS(context.Background(), strings.NewReader(sampleICS), window2024, time.UTC)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"2024-03-20 Dentist",
		"2024-03-04 Standup",
		"2024-03-11 Standup",
		"2024-03-18 Standup",
		"2024-04-01 Untitled",
	}, titles(ms))
	for _, m := range ms {
		assert.Equal(t, markers.KindEvent, m.Kind)
		assert.Zero(t, m.Date.Hour())
	}
}

func TestDecodeICS_Malformed(t *testing.T) {
	_, err := markers.DecodeICS(context.Background(), strings.NewReader("BEGIN:VCALENDAR\r\nBROKEN"), window2024, time.UTC)
	assert.Error(t, err)
}

func TestDecodeICS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := markers.DecodeICS(ctx, strings.NewReader(sampleICS), window2024, time.UTC)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeVCard(t *testing.T) {
	data := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Ada\r\nBDAY:2024-06-10\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Grace\r\nBDAY:--02-29\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:NoDate\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:BadDate\r\nBDAY:yesterday\r\nEND:VCARD\r\n"

	title := func(name string, age int, yearKnown bool) string {
		if yearKnown {
			return fmt.Sprintf("%s (%d)", name, age)
		}
		return name
	}

	ms, err := markers.DecodeVCard(context.Background(), strings.NewReader(data), window2024, time.UTC, title)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		// Born in 2024: no marker for 2023.
		"2024-06-10 Ada (0)",
		"2025-06-10 Ada (1)",
		"2023-03-01 Grace",
		"2024-02-29 Grace",
		"2025-03-01 Grace",
	}, titles(ms))
}

func TestDecodeVCard_DateFormats(t *testing.T) {
	tests := []struct {
		bday      string
		yearKnown bool
		month     time.Month
		day       int
	}{
		{"1990-05-17", true, time.May, 17},
		{"19900517", true, time.May, 17},
		{"1990-05-17T00:00:00Z", true, time.May, 17},
		{"--05-17", false, time.May, 17},
		{"--0517", false, time.May, 17},
	}

	for _, tt := range tests {
		t.Run(tt.bday, func(t *testing.T) {
			data := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:X\r\nBDAY:" + tt.bday + "\r\nEND:VCARD\r\n"
			ms, err := markers.DecodeVCard(context.Background(), strings.NewReader(data),
				markers.Window{FromYear: 2024, ToYear: 2024}, time.UTC, nil)
			require.NoError(t, err)
			require.Len(t, ms, 1)

			assert.Equal(t, tt.yearKnown, ms[0].YearKnown)
			assert.Equal(t, tt.month, ms[0].Date.Month())
			assert.Equal(t, tt.day, ms[0].Date.Day())
			assert.Equal(t, "Birthday: X", ms[0].Title)
			assert.Equal(t, markers.KindBirthday, ms[0].Kind)
		})
	}
}

func TestWindowAround(t *testing.T) {
	w := markers.WindowAround(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, markers.Window{FromYear: 2023, ToYear: 2025}, w)
}
