package main

// NOTE: Tests in this package mutate package-level globals (resolveConfig,
// getwd, goldenTranscript, newPickerUI, runPromptServer, color.NoColor).
// Do not use t.Parallel(). Each test restores globals via t.Cleanup().

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/effective-patterns/internal/config"
)

// stubConfig makes config resolution return cfg without touching the filesystem.
func stubConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	orig := resolveConfig
	resolveConfig = func(string, string) (*config.Config, string, error) {
		return cfg, "", nil
	}
	t.Cleanup(func() { resolveConfig = orig })
}

// runCLI executes the CLI with default config and colors disabled.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stubConfig(t, config.Default())
	return runCLIRaw(t, args...)
}

// runCLIRaw executes the CLI without stubbing config resolution.
func runCLIRaw(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	origNoColor := color.NoColor
	t.Cleanup(func() { color.NoColor = origNoColor })

	var stdout, stderr bytes.Buffer
	full := append([]string{"ep", "--color", "never"}, args...)
	err := execute(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
