package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidateCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func buildTo(t *testing.T, path string) {
	t.Helper()
	_, err := runBuildCommand(t, "text", "-o", path)
	require.NoError(t, err)
}

func TestValidateGeneratedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karabiner.json")
	buildTo(t, path)

	out, err := runValidateCommand(t, "text", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+path+" is valid")
}

func TestValidateGeneratedDocumentJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karabiner.json")
	buildTo(t, path)

	out, err := runValidateCommand(t, "json", path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Len(t, resp.Data.Digest, 64)
}

func TestValidateNonExistentFile(t *testing.T) {
	out, err := runValidateCommand(t, "text", "/nonexistent/karabiner.json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E005") // ErrCodeNotFound
	assert.Contains(t, out, "not found")
}

func TestValidateMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karabiner.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"global": `), 0o644))

	out, err := runValidateCommand(t, "text", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, "E301")
}

func TestValidateSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown key code",
			doc: `{"global":{"show_in_menu_bar":false},"profiles":[{"name":"Default","complex_modifications":{"rules":[
				{"description":"x","manipulators":[{"type":"basic","from":{"key_code":"not_a_key"},"to":[{"key_code":"a"}]}]}]}}]}`,
		},
		{
			name: "missing from",
			doc: `{"global":{"show_in_menu_bar":false},"profiles":[{"name":"Default","complex_modifications":{"rules":[
				{"description":"x","manipulators":[{"type":"basic","to":[{"key_code":"a"}]}]}]}}]}`,
		},
		{
			name: "missing profiles",
			doc:  `{"global":{"show_in_menu_bar":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "karabiner.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			out, err := runValidateCommand(t, "json", path)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))

			var resp struct {
				Status string           `json:"status"`
				Error  *CLIError        `json:"error"`
				Data   ValidationResult `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "E301", resp.Error.Code)
			assert.False(t, resp.Data.Valid)
			assert.NotEmpty(t, resp.Data.Errors)
		})
	}
}

func TestValidateDefaultPath(t *testing.T) {
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	assert.Equal(t, "validate [file]", cmd.Use)
	assert.Contains(t, cmd.Long, DefaultOutput)
}
