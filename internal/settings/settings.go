// Package settings reads the YAML options file of the demo application and
// watches it for changes.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/markers"
	"gopkg.in/yaml.v3"
)

// File is the content of the options file.
type File struct {
	Granularity      calendar.Granularity  `yaml:"granularity"`
	WeekStart        Weekday               `yaml:"week-start"`
	CurrentDate      Date                  `yaml:"current-date"`
	SelectedDate     Date                  `yaml:"selected-date"`
	MinDate          Date                  `yaml:"min-date"`
	MaxDate          Date                  `yaml:"max-date"`
	PageBuffer       int                   `yaml:"page-buffer"`
	GesturesDisabled bool                  `yaml:"gestures-disabled"`
	Language         string                `yaml:"language"`
	Theme            calendar.PartialTheme `yaml:"theme"`
	Markers          MarkerSource          `yaml:"markers"`
}

// MarkerSource configures the day markers feed. The password is never
// stored in the file; it comes from the OS keyring.
type MarkerSource struct {
	Mode           string `yaml:"mode"`
	Path           string `yaml:"path"`
	URL            string `yaml:"url"`
	User           string `yaml:"user"`
	RefreshMinutes int    `yaml:"refresh-minutes"`
}

// Date is a calendar day written as yyyy-mm-dd. The zero value means unset.
type Date struct {
	time.Time
}

// UnmarshalYAML parses a yyyy-mm-dd scalar in the local time zone.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	value := strings.TrimSpace(node.Value)
	if value == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(config.DateFormatFullDash, value, time.Local)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrOptionsDate, err)
	}
	d.Time = t
	return nil
}

// Weekday accepts either a number (0 = Sunday) or an English day name.
type Weekday time.Weekday

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weekday) UnmarshalYAML(node *yaml.Node) error {
	value := strings.ToLower(strings.TrimSpace(node.Value))
	if n, err := strconv.Atoi(value); err == nil {
		if n < int(time.Sunday) || n > int(time.Saturday) {
			return fmt.Errorf("%s: %d", config.ErrWeekStart, n)
		}
		*w = Weekday(n)
		return nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == value {
			*w = Weekday(d)
			return nil
		}
	}
	return fmt.Errorf("%s: %q", config.ErrWeekStart, node.Value)
}

// Default returns the options used when no file is given.
func Default() *File {
	return &File{
		Granularity: calendar.Month,
		WeekStart:   Weekday(time.Sunday),
		PageBuffer:  config.DefaultPageBuffer,
		Language:    config.DefaultLanguage,
		Markers: MarkerSource{
			RefreshMinutes: config.DefaultMarkerRefreshMinute,
		},
	}
}

// Parse decodes and validates YAML options on top of the defaults.
func Parse(r io.Reader) (*File, error) {
	f := Default()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOptionsRead, err)
	}
	if err := yaml.Unmarshal(content, f); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOptionsParse, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFile reads the options file at path.
func LoadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOptionsRead, err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

func (f *File) validate() error {
	if f.PageBuffer < 0 {
		return fmt.Errorf("%s: %d", config.ErrPageBuffer, f.PageBuffer)
	}
	if !f.MinDate.IsZero() && !f.MaxDate.IsZero() && f.MinDate.After(f.MaxDate.Time) {
		return errors.New(config.ErrBoundsOrder)
	}
	switch f.Markers.Mode {
	case "", config.SourceModeLocal, config.SourceModeWeb:
	default:
		return fmt.Errorf("%s: %q", config.ErrModeUnsupport, f.Markers.Mode)
	}
	if f.Markers.RefreshMinutes < 0 {
		return fmt.Errorf("%s: %d", config.ErrRefreshInterval, f.Markers.RefreshMinutes)
	}
	return nil
}

// Options applies the file onto base, keeping base's callbacks and
// progress cell.
func (f *File) Options(base calendar.Options) calendar.Options {
	o := base
	o.Granularity = f.Granularity
	o.WeekStart = time.Weekday(f.WeekStart)
	o.SelectedDate = f.SelectedDate.Time
	o.MinDate = f.MinDate.Time
	o.MaxDate = f.MaxDate.Time
	o.PageBuffer = f.PageBuffer
	o.GesturesDisabled = f.GesturesDisabled
	o.Theme = f.Theme
	if !f.CurrentDate.IsZero() {
		o.CurrentDate = f.CurrentDate.Time
	}
	return o
}

// Source returns the marker source with the given password.
func (f *File) Source(pass string) markers.Source {
	return markers.Source{
		Mode:      f.Markers.Mode,
		LocalPath: f.Markers.Path,
		WebURL:    f.Markers.URL,
		WebUser:   f.Markers.User,
		WebPass:   pass,
	}
}

// RefreshInterval returns how often a web marker source is reloaded, or 0
// when it is not refreshed.
func (f *File) RefreshInterval() time.Duration {
	if f.Markers.Mode != config.SourceModeWeb {
		return 0
	}
	return time.Duration(f.Markers.RefreshMinutes) * time.Minute
}
