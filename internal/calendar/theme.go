package calendar

import (
	"log/slog"
	"sync"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Theme is the fully resolved set of style attributes. It only holds
// comparable values so two themes can be compared with ==.
type Theme struct {
	TodayIndicatorDotColor     string
	SelectedDayBackgroundColor string
	SelectedDayFontColor       string

	HeaderFontFamily    string
	HeaderFontColor     string
	HeaderFontSize      float32
	HeaderTextTransform string
	HeaderDateFormat    string

	DayLabelFontFamily    string
	DayLabelColor         string
	DayLabelFontSize      float32
	DayLabelTextTransform string
	DayLabelDateFormat    string

	DayFontFamily        string
	DayFontColor         string
	DayInactiveFontColor string
	DaySelectedFontColor string
	DayFontSize          float32

	InactiveOpacity float64
}

// PartialTheme overrides selected Theme attributes. Nil fields are left to
// the lower layers.
type PartialTheme struct {
	TodayIndicatorDotColor     *string `yaml:"today-indicator-dot-color"`
	SelectedDayBackgroundColor *string `yaml:"selected-day-background-color"`
	SelectedDayFontColor       *string `yaml:"selected-day-font-color"`

	HeaderFontFamily    *string  `yaml:"header-font-family"`
	HeaderFontColor     *string  `yaml:"header-font-color"`
	HeaderFontSize      *float32 `yaml:"header-font-size"`
	HeaderTextTransform *string  `yaml:"header-text-transform"`
	HeaderDateFormat    *string  `yaml:"header-date-format"`

	DayLabelFontFamily    *string  `yaml:"day-label-font-family"`
	DayLabelColor         *string  `yaml:"day-label-color"`
	DayLabelFontSize      *float32 `yaml:"day-label-font-size"`
	DayLabelTextTransform *string  `yaml:"day-label-text-transform"`
	DayLabelDateFormat    *string  `yaml:"day-label-date-format"`

	DayFontFamily        *string  `yaml:"day-font-family"`
	DayFontColor         *string  `yaml:"day-font-color"`
	DayInactiveFontColor *string  `yaml:"day-inactive-font-color"`
	DaySelectedFontColor *string  `yaml:"day-selected-font-color"`
	DayFontSize          *float32 `yaml:"day-font-size"`

	InactiveOpacity *float64 `yaml:"inactive-opacity"`
}

// Ptr returns a pointer to v, for building PartialTheme literals.
func Ptr[T any](v T) *T {
	return &v
}

// DefaultTheme holds the library-wide defaults. Date formats are left to the
// granularity layer.
var DefaultTheme = PartialTheme{
	TodayIndicatorDotColor:     Ptr(config.DefaultTodayDotColor),
	SelectedDayBackgroundColor: Ptr(config.DefaultSelectedBackground),
	SelectedDayFontColor:       Ptr(config.DefaultFontColorActive),

	HeaderFontFamily:    Ptr(config.DefaultFontFamily),
	HeaderFontColor:     Ptr(config.DefaultFontColorActive),
	HeaderFontSize:      Ptr(float32(config.DefaultHeaderFontSize)),
	HeaderTextTransform: Ptr(config.TransformCapitalize),

	DayLabelFontFamily:    Ptr(config.DefaultFontFamily),
	DayLabelColor:         Ptr(config.DefaultFontColorActive),
	DayLabelFontSize:      Ptr(float32(config.DefaultDayLabelFontSize)),
	DayLabelTextTransform: Ptr(config.TransformUppercase),

	DayFontFamily:        Ptr(config.DefaultFontFamily),
	DayFontColor:         Ptr(config.DefaultFontColorActive),
	DayInactiveFontColor: Ptr(config.DefaultFontColorInactive),
	DaySelectedFontColor: Ptr(config.DefaultFontColorActive),
	DayFontSize:          Ptr(float32(config.DefaultDayFontSize)),

	InactiveOpacity: Ptr(float64(config.DefaultInactiveOpacity)),
}

// granularityTheme returns the per-granularity layer (date formats).
func granularityTheme(iv Interval) PartialTheme {
	return PartialTheme{
		HeaderDateFormat:   Ptr(iv.HeaderFormat),
		DayLabelDateFormat: Ptr(iv.DayLabelFormat),
	}
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ApplyTo writes every set field of p into t.
func (p PartialTheme) ApplyTo(t *Theme) {
	overlay(&t.TodayIndicatorDotColor, p.TodayIndicatorDotColor)
	overlay(&t.SelectedDayBackgroundColor, p.SelectedDayBackgroundColor)
	overlay(&t.SelectedDayFontColor, p.SelectedDayFontColor)

	overlay(&t.HeaderFontFamily, p.HeaderFontFamily)
	overlay(&t.HeaderFontColor, p.HeaderFontColor)
	overlay(&t.HeaderFontSize, p.HeaderFontSize)
	overlay(&t.HeaderTextTransform, p.HeaderTextTransform)
	overlay(&t.HeaderDateFormat, p.HeaderDateFormat)

	overlay(&t.DayLabelFontFamily, p.DayLabelFontFamily)
	overlay(&t.DayLabelColor, p.DayLabelColor)
	overlay(&t.DayLabelFontSize, p.DayLabelFontSize)
	overlay(&t.DayLabelTextTransform, p.DayLabelTextTransform)
	overlay(&t.DayLabelDateFormat, p.DayLabelDateFormat)

	overlay(&t.DayFontFamily, p.DayFontFamily)
	overlay(&t.DayFontColor, p.DayFontColor)
	overlay(&t.DayInactiveFontColor, p.DayInactiveFontColor)
	overlay(&t.DaySelectedFontColor, p.DaySelectedFontColor)
	overlay(&t.DayFontSize, p.DayFontSize)

	overlay(&t.InactiveOpacity, p.InactiveOpacity)
}

// ResolveTheme merges the granularity formats, the library defaults and the
// user overrides, in increasing precedence.
func ResolveTheme(iv Interval, user PartialTheme) Theme {
	var t Theme
	granularityTheme(iv).ApplyTo(&t)
	DefaultTheme.ApplyTo(&t)
	user.ApplyTo(&t)
	return t
}

// ThemeMerger keeps the identity of the resolved theme stable: Merge returns
// the previous pointer whenever the resolved values did not change, so
// consumers can compare themes by pointer.
type ThemeMerger struct {
	mu      sync.Mutex
	current *Theme
}

// Merge resolves the theme for iv and user.
func (m *ThemeMerger) Merge(iv Interval, user PartialTheme) *Theme {
	next := ResolveTheme(iv, user)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && *m.current == next {
		return m.current
	}
	if m.current != nil {
		slog.Debug(config.MsgThemeUpdated,
			config.LogKeyComponent, config.CompCalendar,
			config.LogKeyGranularity, iv.Granularity.String(),
		)
	}
	m.current = &next
	return m.current
}

// Current returns the last merged theme, or nil before the first Merge.
func (m *ThemeMerger) Current() *Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
