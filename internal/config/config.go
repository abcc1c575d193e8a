// Package config holds the batch driver's settings, populated from CLI
// flags by cmd/limitbook (SPEC_FULL §10).
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings controls one invocation of the batch driver.
type Settings struct {
	// Inputs is the list of CSV files to process, one Engine per file.
	Inputs []string
	// OutputDir is where each input's result CSV is written. Empty
	// means alongside the input file.
	OutputDir string
	// Concurrency bounds how many files run at once.
	Concurrency int
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// OutputPathFor derives the result CSV path for a given input path
// under these Settings.
func (s Settings) OutputPathFor(input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)] + ".out" + ext

	dir := s.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

// Validate rejects settings that cannot be run.
func (s Settings) Validate() error {
	if len(s.Inputs) == 0 {
		return fmt.Errorf("no input files given")
	}
	for _, in := range s.Inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("input %s: %w", in, err)
		}
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	return nil
}
