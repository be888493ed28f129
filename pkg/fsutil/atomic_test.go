package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
		content  string
		mode     os.FileMode
		wantMode os.FileMode
	}{
		{name: "new file default mode", content: "hello\n", wantMode: fsutil.DefaultFileMode},
		{name: "replaces existing", existing: "old\n", content: "new\n", mode: 0o600, wantMode: 0o600},
		{name: "empty content", existing: "old\n", content: "", mode: 0o644, wantMode: 0o644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "doc.md")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o644))
			}

			require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte(tt.content), tt.mode))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, stat.Mode().Perm())

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must not be left behind")
		})
	}
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "doc.md")
	err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0)
	require.Error(t, err)
}

func TestWriteIfChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	ctx := context.Background()

	wrote, err := fsutil.WriteIfChanged(ctx, path, []byte("a\n"), 0)
	require.NoError(t, err)
	assert.True(t, wrote, "missing file is written")

	wrote, err = fsutil.WriteIfChanged(ctx, path, []byte("a\n"), 0)
	require.NoError(t, err)
	assert.False(t, wrote, "identical content is not rewritten")

	wrote, err = fsutil.WriteIfChanged(ctx, path, []byte("b\n"), 0)
	require.NoError(t, err)
	assert.True(t, wrote)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(got))
}

func FuzzWriteAtomic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("# Title\n\n- item\n"))
	f.Add([]byte("\x00\x01\x02"))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, content, 0o644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})
}
