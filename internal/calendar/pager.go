package calendar

// Pager is the paging engine the calendar drives. It owns the page index,
// clamps jumps to its bounds, recognises gestures and animates settles.
type Pager interface {
	IncrementPage(animated bool)
	DecrementPage(animated bool)
	SetPage(index int, animated bool)

	// SetBounds installs inclusive page bounds (UnboundedMin/UnboundedMax
	// when open ended).
	SetBounds(minIndex, maxIndex int)

	// OnPageChange registers fn for settle events.
	OnPageChange(fn func(page int))

	// OnFrame registers fn for the continuous fractional page offset,
	// called on every animation frame.
	OnFrame(fn func(offset float64))
}

// PageSetter is the part of Pager the synchronizer needs.
type PageSetter interface {
	SetPage(index int, animated bool)
}
