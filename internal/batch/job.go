// Package batch drives one Engine per input file (SPEC_FULL §11/§12),
// so that a multi-file run gets the concurrency of a worker pool while
// every individual file still sees the single-threaded, strictly
// ordered processing the matching core requires.
package batch

import (
	"fmt"
	"os"

	"limitbook/internal/engine"
	"limitbook/internal/feed"

	"github.com/rs/zerolog/log"
)

// Job is one input/output file pair to run through a fresh Engine.
type Job struct {
	InputPath  string
	OutputPath string
}

// Result carries a Job's outcome back to the caller.
type Result struct {
	Job   Job
	Err   error
	Rows  int
	Sink  int
}

// Run executes a single Job end to end: read the CSV, run the engine,
// write the CSV. It never panics past this point — an Admit/Matcher
// invariant panic is recovered here and reported as a Result error so
// one bad file cannot take down the whole pool.
func Run(job Job) (result Result) {
	result.Job = job
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic while running %s: %v", job.InputPath, r)
		}
	}()

	in, err := os.Open(job.InputPath)
	if err != nil {
		result.Err = fmt.Errorf("open input %s: %w", job.InputPath, err)
		return result
	}
	defer in.Close()

	raw, err := feed.ReadAll(in)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", job.InputPath, err)
		return result
	}
	result.Rows = len(raw)

	e := engine.New()
	if err := e.Run(raw); err != nil {
		result.Err = fmt.Errorf("run %s: %w", job.InputPath, err)
		return result
	}
	result.Sink = e.Sink.Len()

	out, err := os.Create(job.OutputPath)
	if err != nil {
		result.Err = fmt.Errorf("create output %s: %w", job.OutputPath, err)
		return result
	}
	defer out.Close()

	if err := feed.WriteAll(out, e.Sink); err != nil {
		result.Err = fmt.Errorf("write %s: %w", job.OutputPath, err)
		return result
	}

	log.Info().
		Str("input", job.InputPath).
		Str("output", job.OutputPath).
		Int("rows", result.Rows).
		Int("events", result.Sink).
		Msg("file processed")

	return result
}
