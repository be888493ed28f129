package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/mdparsec/pkg/verify"
)

// Processor handles a single file.
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*verify.Report, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, path string) (*verify.Report, error)

// ProcessFile calls f.
func (f ProcessorFunc) ProcessFile(ctx context.Context, path string) (*verify.Report, error) {
	return f(ctx, path)
}

// Runner runs a Processor over discovered files.
type Runner struct {
	Processor Processor
}

// New creates a Runner for processor.
func New(processor Processor) *Runner {
	return &Runner{Processor: processor}
}

// Run discovers files under opts.Paths and processes them with a bounded
// pool of workers. Outcomes come back in path order regardless of which
// worker finished first. A cancelled context stops the run; the outcomes
// gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: path}
		report, err := r.Processor.ProcessFile(ctx, path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Report = report
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
