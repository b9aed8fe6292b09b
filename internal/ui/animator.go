package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/pager"
)

// Animator runs pager settles as Fyne animations with an ease-out curve.
// Steps are delivered on the Fyne main goroutine.
type Animator struct {
	Duration time.Duration
}

var _ pager.Animator = Animator{}

// NewAnimator returns an animator with the default page duration.
func NewAnimator() Animator {
	return Animator{Duration: config.PageAnimationDuration}
}

// Animate implements pager.Animator.
func (a Animator) Animate(step func(progress float64)) func() {
	anim := fyne.NewAnimation(a.Duration, func(p float32) {
		step(float64(p))
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
	return anim.Stop
}
