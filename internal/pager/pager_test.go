package pager_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-swipecal/internal/pager"
)

// ManualAnimator lets tests drive animation frames by hand.
type ManualAnimator struct {
	steps   []func(float64)
	stopped int
}

func (m *ManualAnimator) Animate(step func(float64)) func() {
	m.steps = append(m.steps, step)
	return func() { m.stopped++ }
}

// Last returns the step function of the most recent animation.
func (m *ManualAnimator) Last() func(float64) {
	return m.steps[len(m.steps)-1]
}

type recorder struct {
	changes []int
	frames  []float64
}

func record(p *pager.Pager) *recorder {
	r := &recorder{}
	p.OnPageChange(func(page int) { r.changes = append(r.changes, page) })
	p.OnFrame(func(offset float64) { r.frames = append(r.frames, offset) })
	return r
}

func TestNew_Defaults(t *testing.T) {
	p := pager.New()

	minIndex, maxIndex := p.Bounds()
	assert.Equal(t, math.MinInt, minIndex)
	assert.Equal(t, math.MaxInt, maxIndex)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, []int{-1, 0, 1}, p.Visible())
}

func TestSetPage_ImmediateSettles(t *testing.T) {
	p := pager.New()
	r := record(p)

	p.SetPage(5, false)
	p.SetPage(5, false)

	assert.Equal(t, 5, p.Index())
	assert.Equal(t, []int{5}, r.changes, "settling on the same page is not a change")
	assert.Equal(t, []float64{5, 5}, r.frames)
}

func TestSetPage_ClampsToBounds(t *testing.T) {
	p := pager.New()
	p.SetBounds(-2, 9)
	r := record(p)

	p.SetPage(42, false)
	assert.Equal(t, 9, p.Index())
	p.SetPage(-42, true)
	assert.Equal(t, -2, p.Index())
	assert.Equal(t, []int{9, -2}, r.changes)
}

func TestSetBounds_MovesCurrentPage(t *testing.T) {
	p := pager.New()
	p.SetPage(10, false)
	r := record(p)

	p.SetBounds(0, 3)
	assert.Equal(t, 3, p.Index())
	assert.Equal(t, []int{3}, r.changes)

	p.SetBounds(-5, 5)
	assert.Equal(t, 3, p.Index())
	assert.Len(t, r.changes, 1)
}

func TestIncrementDecrement(t *testing.T) {
	p := pager.New()
	p.SetBounds(-1, 1)
	r := record(p)

	p.IncrementPage(true)
	p.IncrementPage(true)
	p.DecrementPage(false)
	p.DecrementPage(false)
	p.DecrementPage(false)

	assert.Equal(t, -1, p.Index())
	assert.Equal(t, []int{1, 0, -1}, r.changes)
}

func TestAnimatedSetPage_EmitsFrames(t *testing.T) {
	anim := &ManualAnimator{}
	p := pager.New(pager.WithAnimator(anim))
	r := record(p)

	p.SetPage(2, true)
	require.True(t, p.Animating())

	step := anim.Last()
	step(0.25)
	step(0.5)
	assert.Empty(t, r.changes)
	assert.InDelta(t, 1.0, p.Offset(), 1e-9)

	step(1)
	assert.False(t, p.Animating())
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, []int{2}, r.changes)
	assert.Equal(t, []float64{0.5, 1, 2}, r.frames)
}

func TestAnimation_SupersededByLaterJump(t *testing.T) {
	anim := &ManualAnimator{}
	p := pager.New(pager.WithAnimator(anim))
	r := record(p)

	p.SetPage(4, true)
	first := anim.Last()
	first(0.5)

	p.SetPage(-1, false)
	assert.Equal(t, 1, anim.stopped)

	// Late frames of the cancelled animation are ignored.
	first(0.75)
	first(1)
	assert.Equal(t, -1, p.Index())
	assert.Equal(t, []int{-1}, r.changes)
}

func TestIncrement_StepsFromPendingTarget(t *testing.T) {
	anim := &ManualAnimator{}
	p := pager.New(pager.WithAnimator(anim))

	p.IncrementPage(true)
	p.IncrementPage(true)
	anim.Last()(1)

	assert.Equal(t, 2, p.Index())
}

func TestDrag_SettleThreshold(t *testing.T) {
	tests := []struct {
		name  string
		drags []float64
		want  int
	}{
		{"Small drag snaps back", []float64{0.2}, 0},
		{"Past threshold moves forward", []float64{0.1, 0.2}, 1},
		{"Backward past threshold", []float64{-0.4}, -1},
		{"Multiple pages", []float64{1.5, 0.6}, 2},
		{"Clamped by bounds", []float64{9}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pager.New()
			p.SetBounds(-3, 3)
			r := record(p)

			require.True(t, p.BeginDrag())
			for _, d := range tt.drags {
				p.Drag(d)
			}
			p.EndDrag()

			assert.Equal(t, tt.want, p.Index())
			assert.InDelta(t, float64(tt.want), p.Offset(), 1e-9)
			assert.NotEmpty(t, r.frames)
			assert.InDelta(t, float64(tt.want), r.frames[len(r.frames)-1], 1e-9)
		})
	}
}

func TestDrag_OffsetClampedToBounds(t *testing.T) {
	p := pager.New()
	p.SetBounds(0, 0)
	r := record(p)

	p.BeginDrag()
	p.Drag(-0.8)
	assert.Equal(t, []float64{0}, r.frames)
	p.EndDrag()
	assert.Empty(t, r.changes)
}

func TestDrag_Disabled(t *testing.T) {
	p := pager.New(pager.WithGesturesDisabled(true))
	r := record(p)

	assert.False(t, p.BeginDrag())
	p.Drag(2)
	p.EndDrag()
	assert.Empty(t, r.frames)

	p.SetGesturesDisabled(false)
	assert.True(t, p.BeginDrag())

	// Imperative commands are unaffected by the flag.
	p.SetGesturesDisabled(true)
	p.IncrementPage(false)
	assert.Equal(t, 1, p.Index())
}

func TestDrag_InterruptsAnimation(t *testing.T) {
	anim := &ManualAnimator{}
	p := pager.New(pager.WithAnimator(anim))

	p.SetPage(3, true)
	step := anim.Last()
	step(0.5)

	require.True(t, p.BeginDrag())
	assert.False(t, p.Animating())
	step(1)
	assert.Equal(t, 0, p.Index(), "cancelled animation must not settle")
}

func TestVisible(t *testing.T) {
	p := pager.New(pager.WithBuffer(2))
	p.SetBounds(-1, 10)

	assert.Equal(t, []int{-1, 0, 1, 2}, p.Visible())

	p.SetBuffer(0)
	assert.Equal(t, []int{0}, p.Visible())

	p.SetBuffer(-4)
	assert.Equal(t, []int{0}, p.Visible())
}

func TestVisible_NoOverflowAtSentinels(t *testing.T) {
	p := pager.New()
	p.SetBounds(math.MaxInt-1, math.MaxInt)

	assert.Equal(t, math.MaxInt-1, p.Index())
	assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, p.Visible())
}
