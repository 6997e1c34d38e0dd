package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) (Change, bool) {
	t.Helper()
	select {
	case c, ok := <-w.Changes():
		return c, ok
	case <-time.After(2 * time.Second):
		return Change{}, false
	}
}

func TestWatcher_ReportsWritesToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := NewWatcher(nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	c, ok := waitChange(t, w)
	require.True(t, ok, "expected a change")
	assert.Equal(t, path, c.Path)
}

func TestWatcher_CloseClosesChanges(t *testing.T) {
	w, err := NewWatcher(nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch(""))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	assert.False(t, ok)
}
