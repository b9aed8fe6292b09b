package calendar

// PageStyle is the visual placement of one page for the current frame.
type PageStyle struct {
	TranslateX float64
	Opacity    float64
}

// InterpolatorParams describes a page relative to the focused position.
// FocusOffset is 0 for the centred page, -1/+1 for its neighbours and
// fractional while dragging.
type InterpolatorParams struct {
	FocusOffset float64
	PageWidth   float64
	Theme       *Theme
}

// PageInterpolator computes the style of a page for one frame.
type PageInterpolator func(p InterpolatorParams) PageStyle

// DefaultPageInterpolator slides pages horizontally and fades neighbours to
// the theme's inactive opacity.
func DefaultPageInterpolator(p InterpolatorParams) PageStyle {
	inactive := 1.0
	if p.Theme != nil {
		inactive = p.Theme.InactiveOpacity
	}
	return PageStyle{
		TranslateX: interpolate(p.FocusOffset, -p.PageWidth, 0, p.PageWidth, false),
		Opacity:    interpolate(p.FocusOffset, inactive, 1, inactive, true),
	}
}

// interpolate maps x over the input range [-1, 0, 1] to [lo, mid, hi],
// extrapolating linearly unless clamp is set.
func interpolate(x, lo, mid, hi float64, clamp bool) float64 {
	if clamp {
		if x < -1 {
			x = -1
		} else if x > 1 {
			x = 1
		}
	}
	if x < 0 {
		return mid + (mid-lo)*x
	}
	return mid + (hi-mid)*x
}
