package ui

import (
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/markers"
)

// Agenda lists the markers of the displayed page below the calendar.
type Agenda struct {
	tr *Translator

	mu    sync.RWMutex
	items []markers.Marker

	header *widget.Label
	list   *widget.List
	empty  *widget.Label
}

// NewAgenda builds an empty agenda.
func NewAgenda(tr *Translator) *Agenda {
	a := &Agenda{tr: tr}
	a.header = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.empty = widget.NewLabel(tr.Msg(config.TKeyAgendaEmpty))

	a.list = widget.NewList(
		func() int {
			a.mu.RLock()
			defer a.mu.RUnlock()
			return len(a.items)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			a.mu.RLock()
			defer a.mu.RUnlock()
			if id >= len(a.items) {
				return
			}
			m := a.items[id]
			o.(*widget.Label).SetText(calendar.Format(m.Date, config.FormatDayKey) + "  " + m.Title)
		},
	)
	a.refreshLabels()
	return a
}

// Show lists the markers of set dated in [from, to].
func (a *Agenda) Show(set *markers.Set, from, to time.Time) {
	items := set.Between(from, to)

	a.mu.Lock()
	a.items = items
	a.mu.Unlock()

	slog.Debug(config.MsgAgendaUpdated,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(items),
	)
	a.refreshLabels()
	a.list.Refresh()
}

// Items returns the listed markers.
func (a *Agenda) Items() []markers.Marker {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]markers.Marker, len(a.items))
	copy(out, a.items)
	return out
}

// Summary returns the header text.
func (a *Agenda) Summary() string {
	return a.header.Text
}

// Retranslate refreshes the labels after a language change.
func (a *Agenda) Retranslate() {
	a.empty.SetText(a.tr.Msg(config.TKeyAgendaEmpty))
	a.refreshLabels()
}

func (a *Agenda) refreshLabels() {
	a.mu.RLock()
	n := len(a.items)
	a.mu.RUnlock()

	a.header.SetText(a.tr.Msg(config.TKeyLblAgenda) + " · " + a.tr.Count(config.TKeyAgendaCount, n))
	if n == 0 {
		a.empty.Show()
		a.list.Hide()
		return
	}
	a.empty.Hide()
	a.list.Show()
}

// Content returns the widget tree of the agenda.
func (a *Agenda) Content() fyne.CanvasObject {
	body := container.NewStack(a.list, a.empty)
	return container.NewBorder(a.header, nil, nil, nil,
		container.NewGridWrap(fyne.NewSize(config.WindowWidth, config.AgendaListHeight), body))
}
