package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hyperkey/internal/keycode"
)

const validScenario = `
name: window_left_half
description: "Hyper+W then left arrow"
laptop: true
language: ru
extras: [navigation]
steps:
  - down: caps_lock
    variables: { hyper: 1 }
  - tap: left_arrow
  - wait: 250
assertions:
  - type: emitted
    key: left_arrow
    modifiers: [left_command, left_option, left_control, left_shift]
  - type: event_count
    event: emit
    count: 1
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(validScenario))
	require.NoError(t, err)

	assert.Equal(t, "window_left_half", s.Name)
	assert.True(t, s.Laptop)
	assert.Equal(t, "ru", s.Language)
	assert.Equal(t, []string{"navigation"}, s.Extras)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, "caps_lock", s.Steps[0].Down)
	assert.Equal(t, map[string]int{"hyper": 1}, s.Steps[0].Variables)
	assert.Equal(t, int64(250), s.Steps[2].Wait)
	assert.Equal(t, "wait 250", s.Steps[2].String())
	require.Len(t, s.Assertions, 2)
	assert.Equal(t, keycode.Hyper, s.Assertions[0].Modifiers)
}

func TestParseScenarioRejectsUnknownFields(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: x
description: y
steps: [{tap: a}]
assertion: []
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing name", "description: d\nsteps: [{tap: a}]\nassertions: [{type: shell, command: x}]", "name is required"},
		{"missing description", "name: n\nsteps: [{tap: a}]\nassertions: [{type: shell, command: x}]", "description is required"},
		{"no steps", "name: n\ndescription: d\nassertions: [{type: shell, command: x}]", "steps list is required"},
		{"no assertions", "name: n\ndescription: d\nsteps: [{tap: a}]", "assertions list is required"},
		{"two actions", "name: n\ndescription: d\nsteps: [{tap: a, down: b}]\nassertions: [{type: shell, command: x}]", "steps[0]: exactly one"},
		{"empty step", "name: n\ndescription: d\nsteps: [{variables: {x: 1}}]\nassertions: [{type: shell, command: x}]", "steps[0]: exactly one"},
		{"negative wait", "name: n\ndescription: d\nsteps: [{wait: -5}]\nassertions: [{type: shell, command: x}]", "wait must be non-negative"},
		{"unknown assertion", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: vibes}]", `unknown assertion type "vibes"`},
		{"emitted without key", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: emitted}]", "key is required for emitted"},
		{"shell without command", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: shell}]", "command is required"},
		{"variable without name", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: variable, value: 1}]", "variable is required"},
		{"input source without language", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: input_source}]", "language is required"},
		{"event count without event", "name: n\ndescription: d\nsteps: [{tap: a}]\nassertions: [{type: event_count, count: 1}]", "event is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenario), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "window_left_half", s.Name)

	_, err = LoadScenario(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	files, err := FindScenarioFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}, files)

	_, err = FindScenarioFiles(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
