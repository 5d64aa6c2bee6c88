package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/rules"
)

func runBuildCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestBuildWritesDocument(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dist", "karabiner.json")

	out, err := runBuildCommand(t, "text", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Generated")
	assert.Contains(t, out, "Wrote "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	want, err := rules.Document(rules.Options{})
	require.NoError(t, err)
	wantData, err := karabiner.Marshal(want)
	require.NoError(t, err)
	assert.Equal(t, string(wantData), string(data))
}

func TestBuildIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	_, err := runBuildCommand(t, "text", "-o", first, "--with", "navigation,deletion")
	require.NoError(t, err)
	_, err = runBuildCommand(t, "text", "-o", second, "--with", "navigation,deletion")
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildOverwritesExistingFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "karabiner.json")
	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o644))

	_, err := runBuildCommand(t, "text", "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestBuildLaptopVariant(t *testing.T) {
	dir := t.TempDir()
	desktop := filepath.Join(dir, "desktop.json")
	laptop := filepath.Join(dir, "laptop.json")

	_, err := runBuildCommand(t, "text", "-o", desktop)
	require.NoError(t, err)
	_, err = runBuildCommand(t, "text", "-o", laptop, "--laptop")
	require.NoError(t, err)

	a, _ := os.ReadFile(desktop)
	b, _ := os.ReadFile(laptop)
	assert.NotEqual(t, a, b)
	assert.Contains(t, string(b), `"apple_vendor_top_case_key_code": "keyboard_fn"`)
	assert.NotContains(t, string(a), "keyboard_fn")
}

func TestBuildJSON(t *testing.T) {
	output := filepath.Join(t.TempDir(), "karabiner.json")

	out, err := runBuildCommand(t, "json", "-o", output)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Digest string      `json:"digest"`
		Data   BuildResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Written)
	assert.Equal(t, output, resp.Data.Output)
	assert.Positive(t, resp.Data.Manipulators)
	assert.Len(t, resp.Digest, 64)
	assert.Equal(t, resp.Digest, resp.Data.Digest)
}

func TestBuildUnknownExtra(t *testing.T) {
	output := filepath.Join(t.TempDir(), "karabiner.json")

	out, err := runBuildCommand(t, "text", "-o", output, "--with", "teleport")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeBuildFailed)
	assert.Contains(t, out, `unknown rule set "teleport"`)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written")
}

func TestBuildWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	out, err := runBuildCommand(t, "text", "-o", filepath.Join(blocker, "karabiner.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E007]")
}

func TestBuildCheck(t *testing.T) {
	output := filepath.Join(t.TempDir(), "karabiner.json")

	t.Run("missing file is stale", func(t *testing.T) {
		_, err := runBuildCommand(t, "text", "-o", output, "--check")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})

	_, err := runBuildCommand(t, "text", "-o", output)
	require.NoError(t, err)

	t.Run("fresh file is up to date", func(t *testing.T) {
		out, err := runBuildCommand(t, "text", "-o", output, "--check")
		require.NoError(t, err)
		assert.Contains(t, out, "is up to date")
	})

	t.Run("reformatted file is still up to date", func(t *testing.T) {
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		compact := &bytes.Buffer{}
		require.NoError(t, json.Compact(compact, data))
		reformatted := filepath.Join(filepath.Dir(output), "compact.json")
		require.NoError(t, os.WriteFile(reformatted, compact.Bytes(), 0o644))

		_, err = runBuildCommand(t, "text", "-o", reformatted, "--check")
		require.NoError(t, err)
	})

	t.Run("different variant is stale", func(t *testing.T) {
		out, err := runBuildCommand(t, "text", "-o", output, "--check", "--laptop")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, out, "out of date")
	})

	t.Run("check never writes", func(t *testing.T) {
		before, err := os.ReadFile(output)
		require.NoError(t, err)
		_, _ = runBuildCommand(t, "text", "-o", output, "--check", "--with", "navigation")
		after, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestDefinitionErrorsEmpty(t *testing.T) {
	assert.Empty(t, definitionErrors())
}

func TestOutputAuthoringErrors(t *testing.T) {
	errs := []AuthoringError{
		{Code: "E201", Path: "w.left_arrow", Message: "duplicate key"},
		{Code: "E203", Path: "x", Message: "empty sub-layer"},
	}

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := outputAuthoringErrors(&OutputFormatter{Format: "text", Writer: buf}, errs)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, buf.String(), "✗ Build failed")
		assert.Contains(t, buf.String(), "w.left_arrow\n  E201: duplicate key")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := outputAuthoringErrors(&OutputFormatter{Format: "json", Writer: buf}, errs)
		require.Error(t, err)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "E201", resp.Error.Code)
	})
}
