// Package pager implements an infinite, bidirectional pager: an integer page
// index clamped to optional bounds, drag gestures measured in pages, and
// animated settles that publish the fractional page offset on every frame.
package pager

import (
	"log/slog"
	"math"
	"sync"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Animator drives settle animations. Animate calls step with the eased
// progress in (0, 1], ending with exactly 1, and returns a function that
// stops further steps.
type Animator interface {
	Animate(step func(progress float64)) (stop func())
}

// Immediate completes every animation in a single step. It is used headless
// and in tests.
type Immediate struct{}

// Animate calls step(1) synchronously.
func (Immediate) Animate(step func(progress float64)) func() {
	step(1)
	return func() {}
}

// Pager holds the page state. All methods are safe for concurrent use;
// listeners are always invoked without internal locks held.
type Pager struct {
	mu       sync.Mutex
	index    int
	offset   float64
	min, max int
	buffer   int
	disabled bool
	dragging bool
	animator Animator

	gen       uint64 // bumped whenever a running animation is superseded
	animating bool
	target    int
	stop      func()

	changeFns []func(int)
	frameFns  []func(float64)
}

// Option configures a Pager.
type Option func(*Pager)

// WithAnimator sets the settle animator (Immediate by default).
func WithAnimator(a Animator) Option {
	return func(p *Pager) {
		p.animator = a
	}
}

// WithBuffer sets how many pages on each side of the current one are kept
// rendered.
func WithBuffer(n int) Option {
	return func(p *Pager) {
		if n < 0 {
			n = 0
		}
		p.buffer = n
	}
}

// WithGesturesDisabled ignores drag gestures; imperative commands still work.
func WithGesturesDisabled(disabled bool) Option {
	return func(p *Pager) {
		p.disabled = disabled
	}
}

// New returns an unbounded pager at page 0.
func New(opts ...Option) *Pager {
	p := &Pager{
		min:      math.MinInt,
		max:      math.MaxInt,
		buffer:   config.DefaultPageBuffer,
		animator: Immediate{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// OnPageChange registers fn for settle events.
func (p *Pager) OnPageChange(fn func(page int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changeFns = append(p.changeFns, fn)
}

// OnFrame registers fn for the fractional page offset.
func (p *Pager) OnFrame(fn func(offset float64)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frameFns = append(p.frameFns, fn)
}

// SetBounds installs inclusive bounds. A current page outside them is moved
// to the nearest bound without animation.
func (p *Pager) SetBounds(minIndex, maxIndex int) {
	p.mu.Lock()
	p.min, p.max = minIndex, maxIndex
	clamped := p.clamp(p.index)
	moved := clamped != p.index
	p.mu.Unlock()

	slog.Debug(config.MsgBoundsUpdated,
		config.LogKeyComponent, config.CompPager,
		config.LogKeyMin, minIndex,
		config.LogKeyMax, maxIndex,
	)
	if moved {
		p.SetPage(clamped, false)
	}
}

// Bounds returns the inclusive bounds.
func (p *Pager) Bounds() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.min, p.max
}

// SetGesturesDisabled toggles drag handling.
func (p *Pager) SetGesturesDisabled(disabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = disabled
}

// SetBuffer changes the render look-ahead.
func (p *Pager) SetBuffer(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 0 {
		n = 0
	}
	p.buffer = n
}

// Index returns the settled page.
func (p *Pager) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Offset returns the fractional page currently on screen.
func (p *Pager) Offset() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Animating reports whether a settle animation is running.
func (p *Pager) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.animating
}

// Visible returns the pages to keep rendered around the current one, in
// ascending order and within bounds.
func (p *Pager) Visible() []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	pages := make([]int, 0, 2*p.buffer+1)
	for i := -p.buffer; i <= p.buffer; i++ {
		page := p.index + i
		if (i < 0 && page > p.index) || (i > 0 && page < p.index) {
			continue // overflow
		}
		if page >= p.min && page <= p.max {
			pages = append(pages, page)
		}
	}
	return pages
}

// IncrementPage moves one page forward (from the pending target if an
// animation is running).
func (p *Pager) IncrementPage(animated bool) {
	p.step(1, animated)
}

// DecrementPage moves one page back.
func (p *Pager) DecrementPage(animated bool) {
	p.step(-1, animated)
}

func (p *Pager) step(delta int, animated bool) {
	p.mu.Lock()
	from := p.index
	if p.animating {
		from = p.target
	}
	p.mu.Unlock()
	p.SetPage(from+delta, animated)
}

// SetPage moves to index, clamped to the bounds. A later call supersedes a
// running animation.
func (p *Pager) SetPage(index int, animated bool) {
	p.mu.Lock()
	target := p.clamp(index)
	p.mu.Unlock()

	if animated {
		p.animateTo(target)
		return
	}
	p.cancelAnimation()
	p.settle(target)
}

// BeginDrag starts a gesture and interrupts any running animation.
func (p *Pager) BeginDrag() bool {
	p.mu.Lock()
	if p.disabled {
		p.mu.Unlock()
		return false
	}
	p.dragging = true
	p.mu.Unlock()

	p.cancelAnimation()
	return true
}

// Drag moves the visible offset by delta pages (positive is forward).
func (p *Pager) Drag(delta float64) {
	p.mu.Lock()
	if !p.dragging {
		p.mu.Unlock()
		return
	}
	p.offset = p.clampOffset(p.offset + delta)
	offset := p.offset
	fns := p.frameFns
	p.mu.Unlock()

	emitFrame(fns, offset)
}

// EndDrag releases the gesture and settles on the page the drag points to:
// a partial page counts once it exceeds config.DragSettleThreshold.
func (p *Pager) EndDrag() {
	p.mu.Lock()
	if !p.dragging {
		p.mu.Unlock()
		return
	}
	p.dragging = false

	d := p.offset - float64(p.index)
	whole := math.Trunc(d)
	steps := int(whole)
	switch frac := d - whole; {
	case frac > config.DragSettleThreshold:
		steps++
	case frac < -config.DragSettleThreshold:
		steps--
	}
	target := p.clamp(p.index + steps)
	p.mu.Unlock()

	p.animateTo(target)
}

func (p *Pager) animateTo(target int) {
	p.cancelAnimation()

	p.mu.Lock()
	p.gen++
	gen := p.gen
	from := p.offset
	p.animating = true
	p.target = target
	animator := p.animator
	p.mu.Unlock()

	stop := animator.Animate(func(progress float64) {
		p.mu.Lock()
		if gen != p.gen {
			p.mu.Unlock()
			return
		}
		if progress >= 1 {
			p.animating = false
			p.stop = nil
			p.mu.Unlock()
			p.settle(target)
			return
		}
		p.offset = from + (float64(target)-from)*progress
		offset := p.offset
		fns := p.frameFns
		p.mu.Unlock()

		emitFrame(fns, offset)
	})

	p.mu.Lock()
	if gen == p.gen && p.animating {
		p.stop = stop
	}
	p.mu.Unlock()
}

func (p *Pager) cancelAnimation() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	p.animating = false
	p.gen++
	p.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// settle commits target: the offset snaps to it, a frame is published and,
// when the page changed, the settle listeners run.
func (p *Pager) settle(target int) {
	p.mu.Lock()
	changed := target != p.index
	p.index = target
	p.offset = float64(target)
	frames := p.frameFns
	changes := p.changeFns
	p.mu.Unlock()

	emitFrame(frames, float64(target))
	if !changed {
		return
	}
	slog.Debug(config.MsgPageSettled,
		config.LogKeyComponent, config.CompPager,
		config.LogKeyPage, target,
	)
	for _, fn := range changes {
		fn(target)
	}
}

func (p *Pager) clamp(index int) int {
	if index < p.min {
		return p.min
	}
	if index > p.max {
		return p.max
	}
	return index
}

func (p *Pager) clampOffset(v float64) float64 {
	return math.Max(float64(p.min), math.Min(float64(p.max), v))
}

func emitFrame(fns []func(float64), offset float64) {
	for _, fn := range fns {
		fn(offset)
	}
}
