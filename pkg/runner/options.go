// Package runner runs the verify pipeline over many Markdown files.
package runner

// Options controls discovery and concurrency.
type Options struct {
	// Paths are the files or directories to process. Empty means the
	// working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob patterns. Empty
	// means the process working directory.
	WorkingDir string

	// Extensions lists the file extensions treated as Markdown, lowercase
	// with the leading dot. Empty means DefaultExtensions().
	Extensions []string

	// Include restricts discovery to files matching one of these globs.
	Include []string

	// Exclude skips files and directories matching one of these globs.
	Exclude []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds the number of concurrent workers. 0 or less means
	// runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the extensions treated as Markdown by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
