package cli

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/qualbench/internal/forks"
	"github.com/vk/qualbench/internal/profile"
)

func TestParseFullCommandLine(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"vectorq", "-c", "cfg", "-o", "out", "-s", "stem7", "-i", "input.txt", "-f", "4", "-p", "absent",
	}, out)
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "vectorq", cfg.Action)
	assert.Equal(t, "cfg", cfg.ConfigDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "stem7", cfg.Stem)
	assert.Equal(t, "input.txt", cfg.InputFile)
	assert.Equal(t, 4, cfg.Forks)
	assert.Equal(t, "absent", cfg.Provider)
	assert.False(t, cfg.WorkerMode())
}

func TestParseDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"vectorq", "-i", "input.txt"}, out)
	require.NoError(t, err)
	assert.Equal(t, "config", cfg.ConfigDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "validate", cfg.Stem)
	assert.Equal(t, 1, cfg.Forks)
	assert.Equal(t, "reference", cfg.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseWorkerMode(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{
		"vectorq", "-worker-shard", "out/validate.input.1", "-worker-log", "out/validate.log.1",
	}, out)
	require.NoError(t, err)
	assert.True(t, cfg.WorkerMode())
	assert.Equal(t, "out/validate.input.1", cfg.WorkerShard)
	assert.Equal(t, "out/validate.log.1", cfg.WorkerLog)
}

func TestParseUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "flag before action", args: []string{"-i", "input.txt"}},
		{name: "unknown action", args: []string{"detect", "-i", "input.txt"}},
		{name: "missing manifest", args: []string{"vectorq"}},
		{name: "unknown flag", args: []string{"vectorq", "-i", "input.txt", "-bogus"}},
		{name: "zero forks", args: []string{"vectorq", "-i", "input.txt", "-f", "0"}},
		{name: "bad log level", args: []string{"vectorq", "-i", "input.txt", "-log-level", "loud"}},
		{name: "bad log format", args: []string{"vectorq", "-i", "input.txt", "-log-format", "xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)
			require.Error(t, err)
			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected an ExitError, got %T", err)
			assert.Equal(t, forks.ExitUsage, exitErr.Code)
		})
	}
}

func TestParseHelpExitsCleanly(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseProfileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "run.hcl")
	require.NoError(t, os.WriteFile(profilePath, []byte(`
harness {
  provider   = "absent"
  output_dir = "profile-out"
  forks      = 6
}
`), 0o644))

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{
		"vectorq", "-i", "input.txt", "-profile", profilePath, "-o", "flag-out",
	}, out)
	require.NoError(t, err)

	// Explicit flag beats the profile; profile beats the built-in default.
	assert.Equal(t, "flag-out", cfg.OutputDir)
	assert.Equal(t, "absent", cfg.Provider)
	assert.Equal(t, 6, cfg.Forks)
	assert.Equal(t, "validate", cfg.Stem)
}

func TestApplyProfileReportsUnassignableValues(t *testing.T) {
	// A flag set that never registered -f cannot accept the profile's forks
	// value; the assignment error must surface instead of being dropped.
	flagSet := flag.NewFlagSet("qualbench", flag.ContinueOnError)
	flagSet.SetOutput(&bytes.Buffer{})

	forksVal := 4
	err := applyProfile(flagSet, &profile.Profile{Forks: &forksVal})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-f")
}

func TestParseBadProfileIsUsageError(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"vectorq", "-i", "input.txt", "-profile", "no-such.hcl"}, out)
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, forks.ExitUsage, exitErr.Code)
}
