package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/tartampluch/go-swipecal/internal/config"
)

// Watch reloads the options file whenever it is written or replaced and
// passes every successfully parsed version to apply. Invalid versions are
// logged and skipped. Watch returns once the watcher is installed; it stops
// when ctx is done.
//
// The parent directory is watched rather than the file, since most editors
// save by renaming a new file over the old one.
func Watch(ctx context.Context, path string, apply func(*File)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrOptionsWatch, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("%s: %w", config.ErrOptionsWatch, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("%s: %w", config.ErrOptionsWatch, err)
	}

	log := slog.With(
		config.LogKeyComponent, config.CompSettings,
		config.LogKeyFile, abs,
	)

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
					continue
				}
				f, err := LoadFile(abs)
				if err != nil {
					log.Warn(config.ErrOptionsParse, config.LogKeyError, err)
					continue
				}
				log.Info(config.MsgOptionsChanged)
				apply(f)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn(config.ErrOptionsWatch, config.LogKeyError, err)
			}
		}
	}()
	return nil
}
