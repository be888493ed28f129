package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/runner"
)

// makeTree creates files (relative, slash separated) under a temp dir.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+f+"\n"), 0o644))
	}
	return dir
}

func abs(dir string, rel ...string) []string {
	out := make([]string, len(rel))
	for i, r := range rel {
		out[i] = filepath.Join(dir, filepath.FromSlash(r))
	}
	return out
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "readme.md")
	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"readme.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "readme.md"), files)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "readme.md", "docs/guide.md", "docs/api.markdown", "src/main.go", "notes.txt")
	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "docs/api.markdown", "docs/guide.md", "readme.md"), files)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "a.md", "b.MDX", "c.txt")
	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mdx", ".txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "b.MDX", "c.txt"), files)
}

func TestDiscover_Exclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name:    "directory tree",
			exclude: []string{"vendor/**"},
			want:    []string{"docs/deep/x.md", "docs/guide.md", "readme.md"},
		},
		{
			name:    "directory anywhere",
			exclude: []string{"**/deep/**"},
			want:    []string{"docs/guide.md", "readme.md", "vendor/lib.md"},
		},
		{
			name:    "base name pattern",
			exclude: []string{"guide.md"},
			want:    []string{"docs/deep/x.md", "readme.md", "vendor/lib.md"},
		},
		{
			name:    "single star stays in one directory",
			exclude: []string{"docs/*.md"},
			want:    []string{"docs/deep/x.md", "readme.md", "vendor/lib.md"},
		},
		{
			name:    "alternatives",
			exclude: []string{"{vendor,docs}/**"},
			want:    []string{"readme.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := makeTree(t, "readme.md", "docs/guide.md", "docs/deep/x.md", "vendor/lib.md")
			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir: dir,
				Exclude:    tt.exclude,
			})
			require.NoError(t, err)
			assert.Equal(t, abs(dir, tt.want...), files)
		})
	}
}

func TestDiscover_Include(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "readme.md", "docs/guide.md", "docs/deep/x.md")
	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Include:    []string{"docs/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "docs/deep/x.md", "docs/guide.md"), files)
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Exclude:    []string{"[unclosed"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob")
}

func TestDiscover_HiddenEntries(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "readme.md", ".hidden.md", ".git/notes.md", "docs/.draft.md")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "readme.md"), files)

	files, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".hidden.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".hidden.md"), files, "explicit paths are taken even when hidden")
}

func TestDiscover_DeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "b.md", "a.md", "docs/c.md")
	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"docs", "b.md", ".", "a.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "a.md", "b.md", "docs/c.md"), files)
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: makeTree(t, "a.md")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "real/doc.md")
	external := makeTree(t, "external.md")

	if err := os.Symlink(filepath.Join(dir, "real", "doc.md"), filepath.Join(dir, "link.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(external, filepath.Join(dir, "linked")))

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "link.md", "real/doc.md"), files, "file symlinks are taken, directory symlinks are not followed")

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(external, "external.md"))
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".md", ".markdown"}, runner.DefaultExtensions())
}
