package calendar

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-swipecal/internal/config"
)

// Synchronizer reconciles an externally supplied current date with the page
// the pager displays.
//
// The mirror trails the external date so that only genuine external changes
// trigger a jump, and the committed page (written by the Notifier) stops a
// date the calendar produced itself from bouncing back as a new jump.
type Synchronizer struct {
	mapper    func() PageMapper
	pager     func() PageSetter
	committed *PageCell
	mirror    *time.Time
}

// NewSynchronizer wires a synchronizer. mapper and pager are read on every
// Sync so configuration changes are picked up without rebuilding it.
func NewSynchronizer(mapper func() PageMapper, pager func() PageSetter, committed *PageCell) *Synchronizer {
	return &Synchronizer{mapper: mapper, pager: pager, committed: committed}
}

// Sync handles a new external current date (zero means absent) and reports
// whether a jump was issued.
func (s *Synchronizer) Sync(current time.Time) bool {
	jumped := s.reconcile(current)
	if current.IsZero() {
		s.mirror = nil
	} else {
		c := current
		s.mirror = &c
	}
	return jumped
}

func (s *Synchronizer) reconcile(current time.Time) bool {
	if current.IsZero() || s.mirror == nil {
		return false
	}

	m := s.mapper()
	if m.Interval().Same(current, *s.mirror) {
		return false
	}

	page := m.DateToPage(current)
	log := slog.With(
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyPage, page,
	)
	if committed := s.committed.Load(); page == committed {
		log.Debug(config.MsgPageJumpSkip, config.LogKeyCommitted, committed)
		return false
	}

	p := s.pager()
	if p == nil {
		log.Warn(config.ErrPagerMissing)
		return false
	}
	log.Debug(config.MsgPageJump, config.LogKeyDate, current.Format(config.DateFormatDisplay))
	p.SetPage(page, false)
	return true
}
