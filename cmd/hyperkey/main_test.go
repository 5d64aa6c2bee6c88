package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hyperkey/internal/cli"
)

func TestRunReportsCommandErrorOnce(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	var stdout, stderr bytes.Buffer

	code := run([]string{"test", missing}, &stdout, &stderr)
	assert.Equal(t, cli.ExitCommandError, code)

	combined := stdout.String() + stderr.String()
	assert.Equal(t, 1, strings.Count(combined, "scenarios directory not found"), "output:\n%s", combined)
	assert.NotContains(t, stderr.String(), "hyperkey:")
}

func TestRunReportsInvalidFormatOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--format", "xml", "shortcuts"}, &stdout, &stderr)
	assert.Equal(t, cli.ExitCommandError, code)
	assert.Equal(t, 1, strings.Count(stderr.String(), "invalid format"), "stderr:\n%s", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRunReportsFlagErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"build", "--no-such-flag"}, &stdout, &stderr)
	assert.Equal(t, cli.ExitCommandError, code)
	require.Contains(t, stderr.String(), "hyperkey: ")
	assert.Contains(t, stderr.String(), "unknown flag: --no-such-flag")
}

func TestRunSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"build", "-o", filepath.Join(t.TempDir(), "karabiner.json")}, &stdout, &stderr)
	assert.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout.String(), "Wrote ")
	assert.NotContains(t, stderr.String(), "hyperkey:")
}
