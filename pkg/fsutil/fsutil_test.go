package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and snapshot", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "doc.md", "# Title\n")

		content, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(content))
		assert.Equal(t, path, snap.Path)
		assert.Equal(t, int64(8), snap.Size)
		assert.Equal(t, os.FileMode(0o644), snap.Mode.Perm())
		assert.NotEqual(t, [32]byte{}, snap.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSnapshot_Changed(t *testing.T) {
	t.Parallel()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "doc.md", "text\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		changed, err := snap.Changed(context.Background())
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rewritten with same size", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "doc.md", "aaaa\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("bbbb\n"), 0o644))
		require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))

		changed, err := snap.Changed(context.Background())
		require.NoError(t, err)
		assert.True(t, changed, "hash comparison must catch same-size edits")
	})

	t.Run("touched", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "doc.md", "text\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		later := snap.ModTime.Add(2 * time.Second)
		require.NoError(t, os.Chtimes(path, later, later))

		changed, err := snap.Changed(context.Background())
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "doc.md", "text\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		changed, err := snap.Changed(context.Background())
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("nil snapshot", func(t *testing.T) {
		t.Parallel()

		var snap *fsutil.Snapshot
		_, err := snap.Changed(context.Background())
		require.ErrorIs(t, err, fsutil.ErrNilSnapshot)
	})
}
