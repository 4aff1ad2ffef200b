package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_rate: 60\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("frame_rate: 30\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, w.Path(), got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for the tuning file")
	}
}

func TestWatchTuningClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestWatchTuningMissingDir(t *testing.T) {
	_, err := WatchTuning(filepath.Join(t.TempDir(), "nope", "frames.yaml"))
	assert.Error(t, err)
}
