package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/settings"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.OptionsFile)
	require.NoError(t, os.WriteFile(path, []byte("granularity: month\n"), config.FilePermUserRW))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan *settings.File, 8)
	require.NoError(t, settings.Watch(ctx, path, func(f *settings.File) { updates <- f }))

	// Invalid content is skipped.
	require.NoError(t, os.WriteFile(path, []byte("granularity: fortnight\n"), config.FilePermUserRW))
	// A sibling file is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("granularity: day\n"), config.FilePermUserRW))
	require.NoError(t, os.WriteFile(path, []byte("granularity: year\n"), config.FilePermUserRW))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case f := <-updates:
			if f.Granularity == calendar.Year {
				return
			}
			assert.NotEqual(t, calendar.Day, f.Granularity, "sibling file must not be applied")
		case <-deadline:
			t.Fatal("options change was not observed")
		}
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := settings.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "x.yaml"), func(*settings.File) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrOptionsWatch)
}
