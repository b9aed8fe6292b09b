package ui

import (
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/markers"
)

// HeaderRenderer draws the title of a page.
type HeaderRenderer func(ctx *calendar.Context, page calendar.Page) fyne.CanvasObject

// DayLabelRenderer draws one weekday label above the days.
type DayLabelRenderer func(ctx *calendar.Context, label string, date time.Time) fyne.CanvasObject

// DayRenderer draws one day cell with its markers.
type DayRenderer func(ctx *calendar.Context, cell calendar.DayCell, marks []markers.Marker) fyne.CanvasObject

// WeekRenderer lays out the rendered days of one week.
type WeekRenderer func(ctx *calendar.Context, days []fyne.CanvasObject) fyne.CanvasObject

// MonthRenderer stacks the rendered weeks of a page.
type MonthRenderer func(ctx *calendar.Context, weeks []fyne.CanvasObject) fyne.CanvasObject

// Renderers groups the pluggable page parts. Nil fields use the defaults.
type Renderers struct {
	Header   HeaderRenderer
	DayLabel DayLabelRenderer
	Day      DayRenderer
	Week     WeekRenderer
	Month    MonthRenderer
}

func (r Renderers) withDefaults() Renderers {
	if r.Header == nil {
		r.Header = DefaultHeader
	}
	if r.DayLabel == nil {
		r.DayLabel = DefaultDayLabel
	}
	if r.Day == nil {
		r.Day = DefaultDay
	}
	if r.Week == nil {
		r.Week = DefaultWeek
	}
	if r.Month == nil {
		r.Month = DefaultMonth
	}
	return r
}

// renderPage assembles header, labels and weeks of p.
func (r Renderers) renderPage(ctx *calendar.Context, p calendar.Page, set *markers.Set) fyne.CanvasObject {
	labels := make([]fyne.CanvasObject, 0, len(p.DayLabels))
	for i, l := range p.DayLabels {
		labels = append(labels, r.DayLabel(ctx, l, p.LabelDates[i]))
	}

	weeks := make([]fyne.CanvasObject, 0, len(p.Weeks))
	for _, w := range p.Weeks {
		days := make([]fyne.CanvasObject, 0, len(w))
		for _, d := range w {
			days = append(days, r.Day(ctx, d, set.OnKey(d.Key)))
		}
		weeks = append(weeks, r.Week(ctx, days))
	}

	return container.NewBorder(
		container.NewVBox(r.Header(ctx, p), r.Week(ctx, labels)),
		nil, nil, nil,
		r.Month(ctx, weeks),
	)
}

// textStyle maps a CSS-like font family to what Fyne can render.
func textStyle(family string) fyne.TextStyle {
	return fyne.TextStyle{Monospace: strings.Contains(strings.ToLower(family), "mono")}
}

// DefaultHeader draws the page header centred.
func DefaultHeader(ctx *calendar.Context, p calendar.Page) fyne.CanvasObject {
	th := ctx.Theme
	t := canvas.NewText(p.Header, ParseColor(th.HeaderFontColor, color.Black))
	t.TextSize = th.HeaderFontSize
	t.TextStyle = textStyle(th.HeaderFontFamily)
	t.TextStyle.Bold = true
	t.Alignment = fyne.TextAlignCenter
	return container.NewPadded(t)
}

// DefaultDayLabel draws a weekday label.
func DefaultDayLabel(ctx *calendar.Context, label string, _ time.Time) fyne.CanvasObject {
	th := ctx.Theme
	t := canvas.NewText(label, ParseColor(th.DayLabelColor, color.Black))
	t.TextSize = th.DayLabelFontSize
	t.TextStyle = textStyle(th.DayLabelFontFamily)
	t.Alignment = fyne.TextAlignCenter
	return t
}

// DefaultDay draws a tappable day cell.
func DefaultDay(ctx *calendar.Context, cell calendar.DayCell, marks []markers.Marker) fyne.CanvasObject {
	return NewDayCell(ctx, cell, len(marks) > 0)
}

// DefaultWeek spreads the days over equal columns.
func DefaultWeek(_ *calendar.Context, days []fyne.CanvasObject) fyne.CanvasObject {
	if len(days) == 0 {
		return layout.NewSpacer()
	}
	return container.NewGridWithColumns(len(days), days...)
}

// DefaultMonth gives every week the same height.
func DefaultMonth(_ *calendar.Context, weeks []fyne.CanvasObject) fyne.CanvasObject {
	if len(weeks) == 0 {
		return layout.NewSpacer()
	}
	return container.NewGridWithRows(len(weeks), weeks...)
}

// DayCell is the default day widget. Tapping it selects its date.
type DayCell struct {
	widget.BaseWidget

	ctx       *calendar.Context
	cell      calendar.DayCell
	hasMarker bool
}

// NewDayCell creates the widget for cell.
func NewDayCell(ctx *calendar.Context, cell calendar.DayCell, hasMarker bool) *DayCell {
	d := &DayCell{ctx: ctx, cell: cell, hasMarker: hasMarker}
	d.ExtendBaseWidget(d)
	return d
}

// Cell returns the described day.
func (d *DayCell) Cell() calendar.DayCell {
	return d.cell
}

// Tapped forwards the selection to the calendar.
func (d *DayCell) Tapped(*fyne.PointEvent) {
	if d.ctx.Select != nil {
		d.ctx.Select(d.cell.Date)
	}
}

// CreateRenderer implements fyne.Widget.
func (d *DayCell) CreateRenderer() fyne.WidgetRenderer {
	th := d.ctx.Theme

	fg := ParseColor(th.DayFontColor, color.Black)
	if !d.cell.InDisplayedMonth {
		fg = ParseColor(th.DayInactiveFontColor, color.Gray{Y: 0x80})
	}
	if d.cell.Selected {
		fg = ParseColor(th.DaySelectedFontColor, fg)
	}

	text := canvas.NewText(d.cell.Text, fg)
	text.TextSize = th.DayFontSize
	text.TextStyle = textStyle(th.DayFontFamily)
	text.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = config.DayCornerRadius
	if d.cell.Selected {
		bg.FillColor = ParseColor(th.SelectedDayBackgroundColor, color.Transparent)
	}

	dot := canvas.NewCircle(ParseColor(th.TodayIndicatorDotColor, color.Black))
	dot.Hidden = !d.cell.Today

	marker := canvas.NewCircle(fg)
	marker.Hidden = !d.hasMarker

	return &dayCellRenderer{bg: bg, text: text, dot: dot, marker: marker}
}

type dayCellRenderer struct {
	bg     *canvas.Rectangle
	text   *canvas.Text
	dot    *canvas.Circle
	marker *canvas.Circle
}

func (r *dayCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	ts := r.text.MinSize()
	r.text.Resize(fyne.NewSize(size.Width, ts.Height))
	r.text.Move(fyne.NewPos(0, (size.Height-ts.Height)/2))

	dotSize := fyne.NewSquareSize(config.TodayDotSize)
	below := (size.Height+ts.Height)/2 + 1
	r.dot.Resize(dotSize)
	r.marker.Resize(dotSize)
	if r.dot.Hidden {
		r.marker.Move(fyne.NewPos((size.Width-dotSize.Width)/2, below))
		return
	}
	r.dot.Move(fyne.NewPos(size.Width/2-dotSize.Width-1, below))
	r.marker.Move(fyne.NewPos(size.Width/2+1, below))
}

func (r *dayCellRenderer) MinSize() fyne.Size {
	ts := r.text.MinSize()
	pad := float32(config.DayCellPadding)
	return fyne.NewSize(ts.Width+pad, ts.Height+pad+config.TodayDotSize)
}

func (r *dayCellRenderer) Refresh() {
	canvas.Refresh(r.bg)
	canvas.Refresh(r.text)
}

func (r *dayCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text, r.dot, r.marker}
}

func (r *dayCellRenderer) Destroy() {}
