//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":     Build,
	"t":     Test.Default,
	"f":     Test.Fuzz,
	"g":     Test.Golden,
	"l":     Lint.Default,
	"c":     Check,
	"cmp":   Corpus.Compare,
	"rt":    Corpus.Check,
	"bench": Bench.Parse,
}

// Namespace types group related targets.
type (
	Test   st.Namespace
	Lint   st.Namespace
	Bench  st.Namespace
	Corpus st.Namespace
)

const binary = "bin/mdparsec"

// Build compiles mdparsec with version info. Skips recompilation when no
// source file has changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building mdparsec...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/mdparsec")
}

// Check runs the linters, the test suite and the golden corpus.
func Check() {
	st.SerialDeps(Lint.Default, Test.Default, Test.Golden)
}

// Clean removes build artifacts.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs mdparsec to $GOBIN or $GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/mdparsec")
}

// Default runs all tests with gotestsum, race detection and coverage.
func (Test) Default() error {
	jobs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", jobs,
		"-parallel", jobs,
		"-coverprofile=coverage.out",
		"-covermode=atomic",
		"./...",
	)
}

// Parser runs the parser packages only, verbosely.
func (Test) Parser() error {
	return sh.RunV("go", "tool", "gotestsum", "-f", "testname", "--", "-race", "./pkg/parsec/...", "./pkg/mark/...")
}

// Golden round-trips every document of the golden corpus in
// pkg/mark/testdata.
func (Test) Golden() error {
	return sh.RunV("go", "test", "-run", "^TestGoldenCorpus$", "-v", "./pkg/mark")
}

// Fuzz runs FuzzParse for $MDPARSEC_FUZZTIME (default 60s). Failing inputs
// land in pkg/mark/testdata/fuzz and replay with the normal tests.
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("MDPARSEC_FUZZTIME"), "60s")
	fmt.Printf("Fuzzing the parser for %s...\n", fuzzTime)
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "^FuzzParse$", "-fuzztime", fuzzTime, "./pkg/mark")
}

// Default runs golangci-lint.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fix runs golangci-lint with auto-fix and gofmt.
func (Lint) Fix() error {
	if err := sh.RunV("gofmt", "-w", "cmd", "internal", "pkg"); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Parse runs the parser benchmarks.
func (Bench) Parse() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./pkg/mark", "./pkg/parsec")
}

// Check round-trips every Markdown file under $MDPARSEC_CORPUS (default:
// the repository) with the freshly built binary.
func (Corpus) Check() error {
	st.Deps(Build)
	return timed("check", corpusDir())
}

// Compare compares the block structure of the corpus with goldmark.
func (Corpus) Compare() error {
	st.Deps(Build)
	return timed("compare", corpusDir())
}

func corpusDir() string {
	return cmp.Or(os.Getenv("MDPARSEC_CORPUS"), ".")
}

func timed(command, dir string) error {
	fmt.Printf("mdparsec %s %s\n", command, dir)
	start := time.Now()
	err := sh.RunV(binary, command, "--format", "summary", dir)
	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
	return err
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
