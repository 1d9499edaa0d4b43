package dropdir

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w, dir
}

func waitForDrop(t *testing.T, w *Watcher) FileDrop {
	t.Helper()
	select {
	case drop := <-w.Drops():
		return drop
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a file drop")
		return FileDrop{}
	}
}

func TestDroppedFileIsReported(t *testing.T) {
	w, dir := startWatcher(t)

	path := filepath.Join(dir, "screenshot.png")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0644))

	drop := waitForDrop(t, w)
	assert.Equal(t, "screenshot.png", drop.Filename)
	assert.Equal(t, []byte("pixels"), drop.Data)
}

func TestAtomicRenameIsReported(t *testing.T) {
	w, dir := startWatcher(t)

	tmp := filepath.Join(dir, ".report.pdf.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("doc"), 0644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "report.pdf")))

	drop := waitForDrop(t, w)
	assert.Equal(t, "report.pdf", drop.Filename)
}

func TestHiddenFilesAreIgnored(t *testing.T) {
	w, dir := startWatcher(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("y"), 0644))

	drop := waitForDrop(t, w)
	assert.Equal(t, "visible.txt", drop.Filename)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "drops")
	w, err := New(dir)
	require.NoError(t, err)
	w.Stop()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
