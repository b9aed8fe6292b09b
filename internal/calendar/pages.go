package calendar

import (
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// DayCell describes one rendered day.
type DayCell struct {
	Date             time.Time
	Key              string // yyyy-MM-dd
	Text             string // day of month
	InDisplayedMonth bool
	Selected         bool
	Today            bool
}

// Page is the content of one pager page.
type Page struct {
	Index        int
	Start        time.Time
	End          time.Time
	FirstOfMonth time.Time
	Header       string
	DayLabels    []string
	LabelDates   []time.Time
	Weeks        [][]DayCell
}

// Days returns every cell of the page in display order.
func (p Page) Days() []DayCell {
	var out []DayCell
	for _, w := range p.Weeks {
		out = append(out, w...)
	}
	return out
}

// Page builds the content of page index for the context's granularity.
func (c *Context) Page(index int) Page {
	date := c.Mapper.PageToDate(index)
	switch c.Granularity {
	case Day:
		return c.dayPage(index, date)
	case Week:
		return c.weekPage(index, date)
	case Year:
		return c.monthPage(index, startOfYear(date), startOfYear(date))
	default:
		return c.monthPage(index, date, date)
	}
}

func (c *Context) monthPage(index int, date, headerDate time.Time) Page {
	first := startOfMonth(date)
	last := endOfMonth(first)

	var weeks [][]DayCell
	for ws := startOfWeek(first, c.WeekStart); !ws.After(last); ws = ws.AddDate(0, 0, config.DaysPerWeek) {
		weeks = append(weeks, c.week(ws, first))
	}

	p := Page{
		Index:        index,
		Start:        first,
		End:          last,
		FirstOfMonth: first,
		Header:       c.header(headerDate),
		Weeks:        weeks,
	}
	c.labels(&p, weeks[0])
	return p
}

func (c *Context) weekPage(index int, date time.Time) Page {
	start := startOfWeek(date, c.WeekStart)
	// The header names the month holding the middle of the week.
	first := startOfMonth(start.AddDate(0, 0, 3))
	days := c.week(start, first)

	p := Page{
		Index:        index,
		Start:        start,
		End:          start.AddDate(0, 0, config.DaysPerWeek-1),
		FirstOfMonth: first,
		Header:       c.header(first),
		Weeks:        [][]DayCell{days},
	}
	c.labels(&p, days)
	return p
}

func (c *Context) dayPage(index int, date time.Time) Page {
	day := startOfDay(date)
	cell := c.cell(day, startOfMonth(day))
	cell.InDisplayedMonth = true

	p := Page{
		Index:        index,
		Start:        day,
		End:          day,
		FirstOfMonth: startOfMonth(day),
		Header:       c.header(day),
		Weeks:        [][]DayCell{{cell}},
	}
	c.labels(&p, p.Weeks[0])
	return p
}

func (c *Context) week(start, firstOfMonth time.Time) []DayCell {
	days := make([]DayCell, 0, config.DaysPerWeek)
	for i := 0; i < config.DaysPerWeek; i++ {
		days = append(days, c.cell(start.AddDate(0, 0, i), firstOfMonth))
	}
	return days
}

func (c *Context) cell(day, firstOfMonth time.Time) DayCell {
	return DayCell{
		Date:             day,
		Key:              Format(day, config.FormatDayKey),
		Text:             Format(day, config.FormatDayNumber),
		InDisplayedMonth: sameMonth(day, firstOfMonth),
		Selected:         c.IsSelected(day),
		Today:            c.IsToday(day),
	}
}

func (c *Context) header(date time.Time) string {
	return Transform(c.Names.Format(date, c.Theme.HeaderDateFormat), c.Theme.HeaderTextTransform)
}

func (c *Context) labels(p *Page, days []DayCell) {
	for _, d := range days {
		p.LabelDates = append(p.LabelDates, d.Date)
		p.DayLabels = append(p.DayLabels, Transform(c.Names.Format(d.Date, c.Theme.DayLabelDateFormat), c.Theme.DayLabelTextTransform))
	}
}
