package markers

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// Source describes where markers come from.
type Source struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string
	WebURL    string
	WebUser   string
	WebPass   string
}

// Enabled reports whether a source is configured at all.
func (s Source) Enabled() bool {
	return s.Mode != ""
}

// Loader reads a Source into a Set.
type Loader struct {
	Clock   calendar.Clock
	Fetcher Fetcher

	// Title localizes birthday titles; DefaultBirthdayTitle when nil.
	Title TitleFunc
}

// Load acquires src, detects its format and decodes the markers for the
// years around now.
func (l *Loader) Load(ctx context.Context, src Source) (*Set, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompMarkers,
		config.LogKeyMode, src.Mode,
	)

	rc, err := l.acquireStream(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	clock := l.Clock
	if clock == nil {
		clock = calendar.RealClock{}
	}
	now := clock.Now()
	w := WindowAround(now)

	br := bufio.NewReader(rc)
	var ms []Marker
	if isICalendar(br) {
		ms, err = DecodeICS(ctx, br, w, now.Location())
	} else {
		ms, err = DecodeVCard(ctx, br, w, now.Location(), l.Title)
	}
	if err != nil {
		return nil, err
	}

	set := NewSet(ms)
	log.Info(config.MsgMarkersLoaded,
		config.LogKeyCount, set.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return set, nil
}

func (l *Loader) acquireStream(ctx context.Context, src Source) (io.ReadCloser, error) {
	switch src.Mode {
	case config.SourceModeLocal:
		if src.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(src.LocalPath)
	case config.SourceModeWeb:
		if src.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if l.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return l.Fetcher.Fetch(ctx, src.WebURL, src.WebUser, src.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, src.Mode)
	}
}

// isICalendar sniffs the stream header without consuming it.
func isICalendar(br *bufio.Reader) bool {
	head, _ := br.Peek(config.SniffLength)
	head = bytes.TrimLeft(head, "\ufeff \t\r\n")
	return bytes.HasPrefix(bytes.ToUpper(head), []byte(config.ICalHeader))
}
