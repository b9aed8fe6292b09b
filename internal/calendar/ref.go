package calendar

import (
	"math"
	"sync/atomic"
)

// Ref is a single-slot cell holding the latest value of T.
//
// One writer (the configuration pass) stores, any number of long-lived
// subscribers load. Loads always observe the most recent store.
type Ref[T any] struct {
	p atomic.Pointer[T]
}

// NewRef returns a cell holding v.
func NewRef[T any](v T) *Ref[T] {
	r := &Ref[T]{}
	r.Store(v)
	return r
}

// Store replaces the held value.
func (r *Ref[T]) Store(v T) {
	r.p.Store(&v)
}

// Load returns the held value, or the zero value if nothing was stored.
func (r *Ref[T]) Load() T {
	if p := r.p.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// PageCell holds the last page committed by the pager. The notifier writes
// it and the synchronizer reads it; writes are visible immediately.
type PageCell struct {
	v atomic.Int64
}

// Store records page as committed.
func (c *PageCell) Store(page int) {
	c.v.Store(int64(page))
}

// Load returns the last committed page.
func (c *PageCell) Load() int {
	return int(c.v.Load())
}

// ProgressCell is an externally owned output for the month progress signal.
// The frame derivation is its only writer.
type ProgressCell struct {
	bits atomic.Uint64
}

// Store writes v.
func (c *ProgressCell) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// Load returns the last written value (0 before any frame).
func (c *ProgressCell) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}
