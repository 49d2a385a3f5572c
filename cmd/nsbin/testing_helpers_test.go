package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nsbin/internal/config"
	"github.com/joshuapare/nsbin/internal/logging"
	"github.com/joshuapare/nsbin/patch"
)

// resetGlobals restores flag and config state between tests
func resetGlobals(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	configPath = ""
	cfg = config.Default()
	cfg.Flush = "none"
	logger = logging.Nop()
	applyFlags = siteFlags{}
	locateFlags = siteFlags{}
	configForce = false
	color.NoColor = true
}

// testModule writes a synthetic module to a temp dir and returns its path
// and identifier offset
func testModule(t *testing.T, f patch.Fixture) (string, int64) {
	t.Helper()
	img, off, err := f.Build()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "module.dll")
	require.NoError(t, os.WriteFile(path, img, 0o644))
	return path, off
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err, "failed to read output")

	return buf.String(), fnErr
}

// decodeJSON checks that output is a JSON object and returns it
func decodeJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "invalid JSON output: %s", output)
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		assert.Contains(t, output, want)
	}
}
