package calendar

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Notifier turns settle events into dates for the host callback.
type Notifier struct {
	mapper    func() PageMapper
	committed *PageCell
	callback  *Ref[func(time.Time)]
}

// NewNotifier wires a notifier. The callback cell may be updated at any time;
// the subscription to the pager stays the same.
func NewNotifier(mapper func() PageMapper, committed *PageCell, callback *Ref[func(time.Time)]) *Notifier {
	return &Notifier{mapper: mapper, committed: committed, callback: callback}
}

// PageChanged records page as committed and reports the first day of its
// period to the latest callback.
func (n *Notifier) PageChanged(page int) {
	n.committed.Store(page)

	m := n.mapper()
	date := m.Interval().StartOf(m.PageToDate(page))

	slog.Debug(config.MsgPageSettled,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyPage, page,
		config.LogKeyDate, date.Format(config.DateFormatDisplay),
	)

	if cb := n.callback.Load(); cb != nil {
		cb(date)
	}
}
