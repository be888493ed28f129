package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover returns the sorted, de-duplicated absolute paths of the Markdown
// files selected by opts. Hidden files and directories are skipped when
// walking; a hidden file named explicitly is still taken.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	filter, err := newFilter(workDir, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if filter.file(abs) {
				add(abs)
			}
			continue
		}

		found, err := filter.walk(ctx, abs)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// pattern is a compiled glob. Patterns without a slash match the base name
// as well as the whole relative path, so "*.tmp.md" works at any depth.
type pattern struct {
	glob     glob.Glob
	baseOnly bool
}

func compilePatterns(raw []string) ([]pattern, error) {
	out := make([]pattern, 0, len(raw))
	for _, p := range raw {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", p, err)
		}
		out = append(out, pattern{glob: g, baseOnly: !strings.Contains(p, "/")})
	}
	return out, nil
}

func matchAny(patterns []pattern, rel string, dir bool) bool {
	candidates := []string{rel}
	if dir {
		// "vendor/**" names the directory itself too.
		candidates = append(candidates, rel+"/")
	}
	for _, p := range patterns {
		for _, c := range candidates {
			if p.glob.Match(c) {
				return true
			}
		}
		if p.baseOnly && p.glob.Match(baseName(rel)) {
			return true
		}
	}
	return false
}

func baseName(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}

type filter struct {
	workDir        string
	extensions     []string
	include        []pattern
	exclude        []pattern
	followSymlinks bool
}

func newFilter(workDir string, opts Options) (*filter, error) {
	include, err := compilePatterns(opts.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compilePatterns(opts.Exclude)
	if err != nil {
		return nil, err
	}
	return &filter{
		workDir:        workDir,
		extensions:     opts.extensions(),
		include:        include,
		exclude:        exclude,
		followSymlinks: opts.FollowSymlinks,
	}, nil
}

func (f *filter) rel(path string) string {
	rel, err := filepath.Rel(f.workDir, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

// file reports whether path is a Markdown file the options select.
func (f *filter) file(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.ContainsFunc(f.extensions, func(e string) bool { return strings.ToLower(e) == ext }) {
		return false
	}
	rel := f.rel(path)
	if matchAny(f.exclude, rel, false) {
		return false
	}
	return len(f.include) == 0 || matchAny(f.include, rel, false)
}

func (f *filter) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || matchAny(f.exclude, f.rel(path), true) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil //nolint:nilerr // unreadable targets are skipped
			}
			if info.IsDir() {
				if !f.followSymlinks {
					return nil
				}
				// Walk the target: WalkDir does not follow a symlinked root.
				sub, err := f.walk(ctx, target)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if f.file(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}
