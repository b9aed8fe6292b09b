package calendar

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// state is one configuration snapshot. It is replaced as a whole and never
// mutated, so pager callbacks can read it without locking.
type state struct {
	opts     Options
	mapper   PageMapper
	minPage  int
	maxPage  int
	context  *Context
	progress ProgressInput
}

// Calendar coordinates the page mapper, the current-date synchronizer, the
// page-change notifier, the month progress derivation and the theme for one
// calendar instance.
type Calendar struct {
	clock     Clock
	reference time.Time

	mu     sync.Mutex // serialises configuration passes
	state  Ref[*state]
	themes ThemeMerger

	pager     Ref[Pager]
	committed PageCell
	onPage    Ref[func(time.Time)]
	onSelect  Ref[func(time.Time, SelectInfo)]
	onFrame   Ref[func(float64)]

	sync     *Synchronizer
	notifier *Notifier
}

// New creates a calendar. The reference date is captured here, from
// opts.CurrentDate or the clock, and never changes afterwards.
func New(opts Options, clock Clock) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	reference := opts.CurrentDate
	if reference.IsZero() {
		reference = clock.Now()
	}

	c := &Calendar{clock: clock, reference: reference}
	mapper := func() PageMapper { return c.state.Load().mapper }
	c.sync = NewSynchronizer(mapper, c.pageSetter, &c.committed)
	c.notifier = NewNotifier(mapper, &c.committed, &c.onPage)

	c.Update(opts)
	return c
}

// Reference returns the date of page 0.
func (c *Calendar) Reference() time.Time {
	return c.reference
}

// Attach subscribes the calendar to p and installs the current bounds.
// It is called once per pager.
func (c *Calendar) Attach(p Pager) {
	c.pager.Store(p)
	p.OnPageChange(c.notifier.PageChanged)
	p.OnFrame(func(offset float64) {
		if fn := c.onFrame.Load(); fn != nil {
			fn(offset)
		}
	})

	st := c.state.Load()
	p.SetBounds(st.minPage, st.maxPage)
}

// Update runs a configuration pass: callbacks are refreshed, bounds and the
// interval are rebuilt when their inputs changed, the theme is re-merged and
// the external current date is reconciled with the displayed page.
func (c *Calendar) Update(opts Options) {
	c.mu.Lock()
	prev := c.state.Load()
	next := c.configure(prev, opts)
	c.state.Store(next)
	c.mu.Unlock()

	c.onPage.Store(opts.OnPageChange)
	c.onSelect.Store(opts.OnDateSelect)
	if opts.MonthProgress != nil {
		c.onFrame.Store(ProgressDeriver(next.progress, opts.MonthProgress))
	} else {
		c.onFrame.Store(nil)
	}

	boundsChanged := prev == nil || prev.minPage != next.minPage || prev.maxPage != next.maxPage
	if p := c.pager.Load(); p != nil && boundsChanged {
		p.SetBounds(next.minPage, next.maxPage)
	}

	c.sync.Sync(opts.CurrentDate)
}

func (c *Calendar) configure(prev *state, opts Options) *state {
	st := &state{opts: opts}

	sameInterval := prev != nil &&
		prev.opts.Granularity == opts.Granularity &&
		prev.opts.WeekStart == opts.WeekStart
	if sameInterval {
		st.mapper = prev.mapper
		st.progress = prev.progress
	} else {
		st.mapper = NewPageMapper(c.reference, IntervalFor(opts.Granularity, opts.WeekStart))
		st.progress = NewProgressInput(c.reference, opts.Granularity, opts.WeekStart)
	}

	if sameInterval && prev.opts.MinDate.Equal(opts.MinDate) && prev.opts.MaxDate.Equal(opts.MaxDate) {
		st.minPage, st.maxPage = prev.minPage, prev.maxPage
	} else {
		st.minPage, st.maxPage = st.mapper.Bounds(opts.MinDate, opts.MaxDate)
		slog.Debug(config.MsgBoundsUpdated,
			config.LogKeyComponent, config.CompCalendar,
			config.LogKeyGranularity, opts.Granularity.String(),
			config.LogKeyMin, st.minPage,
			config.LogKeyMax, st.maxPage,
		)
	}

	iv := st.mapper.Interval()
	st.context = &Context{
		Reference:   c.reference,
		Selected:    opts.SelectedDate,
		Today:       c.clock.Now(),
		Granularity: opts.Granularity,
		WeekStart:   opts.WeekStart,
		Theme:       c.themes.Merge(iv, opts.Theme),
		Names:       opts.Names,
		Interval:    iv,
		Mapper:      st.mapper,
		Select:      c.SelectDate,
	}
	return st
}

// pageSetter hands the synchronizer the attached pager, or nil.
func (c *Calendar) pageSetter() PageSetter {
	if p := c.pager.Load(); p != nil {
		return p
	}
	return nil
}

// Context returns the renderer context of the current configuration.
func (c *Calendar) Context() *Context {
	return c.state.Load().context
}

// Options returns the options of the current configuration.
func (c *Calendar) Options() Options {
	return c.state.Load().opts
}

// Bounds returns the inclusive page bounds of the current configuration.
func (c *Calendar) Bounds() (int, int) {
	st := c.state.Load()
	return st.minPage, st.maxPage
}

// CommittedPage returns the last page the pager settled on.
func (c *Calendar) CommittedPage() int {
	return c.committed.Load()
}

// Theme returns the merged theme of the current configuration.
func (c *Calendar) Theme() *Theme {
	return c.state.Load().context.Theme
}

// Page builds the content of page index.
func (c *Calendar) Page(index int) Page {
	return c.Context().Page(index)
}

// IncrementPage moves one page forward, animated unless told otherwise.
func (c *Calendar) IncrementPage(opts ...PageOption) {
	o := resolvePageOptions(true, opts)
	if p := c.pager.Load(); p != nil {
		p.IncrementPage(o.animated)
	}
}

// DecrementPage moves one page back, animated unless told otherwise.
func (c *Calendar) DecrementPage(opts ...PageOption) {
	o := resolvePageOptions(true, opts)
	if p := c.pager.Load(); p != nil {
		p.DecrementPage(o.animated)
	}
}

// SetPage jumps to the page displaying date, without animation unless told
// otherwise.
func (c *Calendar) SetPage(date time.Time, opts ...PageOption) {
	o := resolvePageOptions(false, opts)
	page := c.state.Load().mapper.DateToPage(date)
	if p := c.pager.Load(); p != nil {
		slog.Debug(config.MsgPageJump,
			config.LogKeyComponent, config.CompCalendar,
			config.LogKeyPage, page,
			config.LogKeyAnimated, o.animated,
		)
		p.SetPage(page, o.animated)
	}
}

// SelectDate reports a tap on date to the host.
func (c *Calendar) SelectDate(date time.Time) {
	ctx := c.Context()
	if fn := c.onSelect.Load(); fn != nil {
		fn(date, SelectInfo{IsSelected: ctx.IsSelected(date)})
	}
}
