package ui

import (
	"image/color"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/markers"
	"github.com/tartampluch/go-swipecal/internal/pager"
)

// Options customises the rendering of a CalendarView.
type Options struct {
	Renderers

	// Interpolator places the rendered pages on every frame.
	// Defaults to calendar.DefaultPageInterpolator.
	Interpolator calendar.PageInterpolator
}

// CalendarView renders the pages a pager keeps visible and turns horizontal
// drags into page gestures.
type CalendarView struct {
	widget.BaseWidget

	cal   *calendar.Calendar
	pager *pager.Pager
	opts  Options

	markers  atomic.Pointer[markers.Set]
	dragging bool
}

var (
	_ fyne.Widget    = (*CalendarView)(nil)
	_ fyne.Draggable = (*CalendarView)(nil)
)

// NewCalendarView creates the view and subscribes it to p. The calendar must
// already be attached to p.
func NewCalendarView(cal *calendar.Calendar, p *pager.Pager, opts Options) *CalendarView {
	opts.Renderers = opts.Renderers.withDefaults()
	if opts.Interpolator == nil {
		opts.Interpolator = calendar.DefaultPageInterpolator
	}

	v := &CalendarView{cal: cal, pager: p, opts: opts}
	v.ExtendBaseWidget(v)

	p.OnFrame(func(float64) { v.Refresh() })
	p.OnPageChange(func(int) { v.Refresh() })
	return v
}

// SetMarkers replaces the markers decorating the days.
func (v *CalendarView) SetMarkers(set *markers.Set) {
	v.markers.Store(set)
	v.Refresh()
}

// Markers returns the markers currently shown.
func (v *CalendarView) Markers() *markers.Set {
	return v.markers.Load()
}

// Dragged moves the pager by the horizontal distance, measured in pages.
func (v *CalendarView) Dragged(ev *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = v.pager.BeginDrag()
		if !v.dragging {
			return
		}
	}
	w := v.Size().Width
	if w <= 0 {
		return
	}
	v.pager.Drag(float64(-ev.Dragged.DX / w))
}

// DragEnd lets the pager settle.
func (v *CalendarView) DragEnd() {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.pager.EndDrag()
}

// CreateRenderer implements fyne.Widget.
func (v *CalendarView) CreateRenderer() fyne.WidgetRenderer {
	r := &calendarViewRenderer{view: v, pages: make(map[int]*pageSlot)}
	r.rebuild()
	return r
}

type pageSlot struct {
	content fyne.CanvasObject
	veil    *canvas.Rectangle
}

type calendarViewRenderer struct {
	view *CalendarView

	ctx     *calendar.Context
	set     *markers.Set
	pages   map[int]*pageSlot
	order   []int
	objects []fyne.CanvasObject
	size    fyne.Size
}

// rebuild renders the visible pages, reusing the ones whose configuration
// and markers are unchanged.
func (r *calendarViewRenderer) rebuild() {
	v := r.view
	ctx := v.cal.Context()
	set := v.markers.Load()
	if ctx != r.ctx || set != r.set {
		r.ctx, r.set = ctx, set
		r.pages = make(map[int]*pageSlot)
	}

	visible := v.pager.Visible()
	keep := make(map[int]*pageSlot, len(visible))
	for _, idx := range visible {
		slot, ok := r.pages[idx]
		if !ok {
			slot = &pageSlot{
				content: v.opts.renderPage(ctx, ctx.Page(idx), set),
				veil:    canvas.NewRectangle(color.Transparent),
			}
		}
		keep[idx] = slot
	}
	r.pages = keep

	// Visible is ascending, so later pages draw on top.
	r.order = visible
	objects := make([]fyne.CanvasObject, 0, 2*len(visible))
	for _, idx := range r.order {
		slot := r.pages[idx]
		objects = append(objects, slot.content, slot.veil)
	}
	r.objects = objects
}

func (r *calendarViewRenderer) Layout(size fyne.Size) {
	r.size = size
	offset := r.view.pager.Offset()
	bg := color.NRGBAModel.Convert(theme.Color(theme.ColorNameBackground)).(color.NRGBA)

	for _, idx := range r.order {
		slot := r.pages[idx]
		style := r.view.opts.Interpolator(calendar.InterpolatorParams{
			FocusOffset: float64(idx) - offset,
			PageWidth:   float64(size.Width),
			Theme:       r.ctx.Theme,
		})

		x := float32(style.TranslateX)
		hidden := x <= -size.Width || x >= size.Width
		pos := fyne.NewPos(x, 0)

		slot.content.Resize(size)
		slot.content.Move(pos)
		slot.content.Hidden = hidden

		veil := bg
		veil.A = uint8(float64(0xff) * clamp01(1-style.Opacity))
		slot.veil.FillColor = veil
		slot.veil.Resize(size)
		slot.veil.Move(pos)
		slot.veil.Hidden = hidden || veil.A == 0
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (r *calendarViewRenderer) MinSize() fyne.Size {
	var size fyne.Size
	for _, slot := range r.pages {
		size = size.Max(slot.content.MinSize())
	}
	return size
}

func (r *calendarViewRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.view.Size())
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *calendarViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *calendarViewRenderer) Destroy() {}
