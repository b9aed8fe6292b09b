package ui

import (
	"strconv"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// YearEntry is an Entry that only accepts up to four digits and reports the
// year on submit.
type YearEntry struct {
	widget.Entry

	// OnYear is called with the typed year when the user submits.
	OnYear func(year int)
}

// NewYearEntry creates a YearEntry calling onYear on submit.
func NewYearEntry(onYear func(year int)) *YearEntry {
	entry := &YearEntry{OnYear: onYear}
	entry.ExtendBaseWidget(entry)
	entry.OnSubmitted = entry.submit
	return entry
}

// TypedRune filters keystrokes to digits while there is room left.
func (e *YearEntry) TypedRune(r rune) {
	if r < '0' || r > '9' || len(e.Text) >= config.YearEntryMaxLen {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *YearEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// Year parses the current text. Pasted text is not filtered, so it is
// validated here.
func (e *YearEntry) Year() (int, bool) {
	if len(e.Text) == 0 || len(e.Text) > config.YearEntryMaxLen {
		return 0, false
	}
	year, err := strconv.Atoi(e.Text)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

func (e *YearEntry) submit(string) {
	year, ok := e.Year()
	if !ok || e.OnYear == nil {
		return
	}
	e.OnYear(year)
}
