package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPathForDefaultsToInputDir(t *testing.T) {
	s := Settings{}
	got := s.OutputPathFor("/data/sampleA.csv")
	assert.Equal(t, "/data/sampleA.out.csv", got)
}

func TestOutputPathForUsesOutputDir(t *testing.T) {
	s := Settings{OutputDir: "/tmp/results"}
	got := s.OutputPathFor("/data/sampleA.csv")
	assert.Equal(t, filepath.Join("/tmp/results", "sampleA.out.csv"), got)
}

func TestValidateRejectsNoInputs(t *testing.T) {
	s := Settings{Concurrency: 1}
	assert.Error(t, s.Validate())
}

func TestValidateRejectsMissingFile(t *testing.T) {
	s := Settings{Inputs: []string{"/nonexistent/file.csv"}, Concurrency: 1}
	assert.Error(t, s.Validate())
}

func TestValidateRejectsBadConcurrency(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s := Settings{Inputs: []string{path}, Concurrency: 0}
	assert.Error(t, s.Validate())
}

func TestValidateAcceptsGoodSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s := Settings{Inputs: []string{path}, Concurrency: 2}
	assert.NoError(t, s.Validate())
}
