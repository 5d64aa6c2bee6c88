package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/hyperkey/internal/shortcuts"
)

func runShortcutsCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewShortcutsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestShortcutsListsEveryApp(t *testing.T) {
	out, err := runShortcutsCommand(t, "text")
	require.NoError(t, err)

	for _, name := range []string{"Karabiner", "Obsidian", "WezTerm"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Right Option + Key (Apps)")
	assert.Contains(t, out, "HYPER + W + C")
	assert.Contains(t, out, "Center")
	assert.Contains(t, out, "(leader)")
}

func TestShortcutsSingleApp(t *testing.T) {
	out, err := runShortcutsCommand(t, "text", "obsidian")
	require.NoError(t, err)

	assert.Contains(t, out, "Quick Switcher")
	assert.NotContains(t, out, "WezTerm")
}

func TestShortcutsUnknownApp(t *testing.T) {
	out, err := runShortcutsCommand(t, "text", "vim")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E009]")
	assert.Contains(t, out, "karabiner, obsidian, wezterm")
}

func TestShortcutsLayout(t *testing.T) {
	t.Run("en", func(t *testing.T) {
		out, err := runShortcutsCommand(t, "text", "karabiner", "--layout")
		require.NoError(t, err)
		assert.Contains(t, out, "Q")
		assert.Contains(t, out, "⇪")
		assert.Contains(t, out, "←")
	})

	t.Run("ru", func(t *testing.T) {
		out, err := runShortcutsCommand(t, "text", "karabiner", "--layout", "--lang", "ru")
		require.NoError(t, err)
		assert.Contains(t, out, "Й")
		assert.NotContains(t, out, " Q ")
	})
}

func TestShortcutsJSON(t *testing.T) {
	out, err := runShortcutsCommand(t, "json", "wezterm", "--layout", "--lang", "ru")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   ShortcutsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Apps, 1)
	assert.Equal(t, "wezterm", resp.Data.Apps[0].ID)
	assert.Equal(t, shortcuts.Layout(shortcuts.Russian), resp.Data.Layout)
	assert.Len(t, resp.Data.Arrows, 4)
}

func TestShortcutsYAMLWithoutLayout(t *testing.T) {
	out, err := runShortcutsCommand(t, "yaml")
	require.NoError(t, err)

	var resp struct {
		Status string          `yaml:"status"`
		Data   ShortcutsResult `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Data.Apps, 3)
	assert.Nil(t, resp.Data.Layout)
	assert.Contains(t, out, "actionKeys:")
}

func TestHighlighted(t *testing.T) {
	app, ok := shortcuts.Lookup("wezterm")
	require.True(t, ok)

	ids := highlighted(app)
	assert.True(t, ids["arrow-left"])
	assert.True(t, ids["-"])
	assert.True(t, ids["\\"])
	assert.False(t, ids["q"])
}
