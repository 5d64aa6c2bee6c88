package binding

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want karabiner.To
	}{
		{
			name: "plain",
			cmd:  KeyCode(keycode.LeftArrow),
			want: karabiner.To{KeyCode: keycode.LeftArrow},
		},
		{
			name: "hyper",
			cmd:  KeyCode(keycode.B, WithHyper()),
			want: karabiner.To{
				KeyCode:   keycode.B,
				Modifiers: []keycode.Modifier{keycode.ModLeftCommand, keycode.ModLeftOption, keycode.ModLeftControl, keycode.ModLeftShift},
			},
		},
		{
			name: "explicit modifiers",
			cmd:  KeyCode(keycode.Tab, WithModifiers(keycode.ModRightControl, keycode.ModRightShift)),
			want: karabiner.To{
				KeyCode:   keycode.Tab,
				Modifiers: []keycode.Modifier{keycode.ModRightControl, keycode.ModRightShift},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.cmd.To, 1)
			assert.Equal(t, tt.want, tt.cmd.To[0])
			assert.Empty(t, tt.cmd.Description)
		})
	}
}

func TestHyperSliceNotAliased(t *testing.T) {
	cmd := KeyCode(keycode.A, WithHyper(), WithModifiers(keycode.ModFn))
	require.Len(t, cmd.To[0].Modifiers, 5)
	assert.Len(t, keycode.Hyper, 4)
}

func TestOpen(t *testing.T) {
	cmd := Open("https://github.com")
	assert.Equal(t, "Open https://github.com", cmd.Description)
	assert.Equal(t, []karabiner.To{{ShellCommand: "open https://github.com"}}, cmd.To)

	bg := OpenRaw("raycast://x", Background())
	assert.Equal(t, "open -g raycast://x", bg.ShellCommand)
}

func TestDelegate(t *testing.T) {
	u, err := url.Parse("raycast://extensions/raycast/emoji-symbols/search-emoji-symbols")
	require.NoError(t, err)

	cmd := Delegate(u)
	assert.Equal(t, "Open raycast://extensions/raycast/emoji-symbols/search-emoji-symbols", cmd.Description)
	assert.Equal(t, "open raycast://extensions/raycast/emoji-symbols/search-emoji-symbols", cmd.To[0].ShellCommand)
	assert.Equal(t, cmd.To[0], DelegateRaw(u))
}

func TestShell(t *testing.T) {
	cmd := Shell(`
		osascript -e 'tell application "Finder" to activate'

		open -a 'Finder.app'
	`)

	require.Len(t, cmd.To, 2)
	assert.Equal(t, `osascript -e 'tell application "Finder" to activate'`, cmd.To[0].ShellCommand)
	assert.Equal(t, "open -a 'Finder.app'", cmd.To[1].ShellCommand)
	assert.Equal(t, `osascript -e 'tell application "Finder" to activate' && open -a 'Finder.app'`, cmd.Description)
}

func TestShellFormat(t *testing.T) {
	cmd := Shell("open %s", "~/Downloads")
	assert.Equal(t, "open ~/Downloads", cmd.To[0].ShellCommand)

	// a literal percent survives when no args are passed
	cmd = Shell("date +%s", []any{}...)
	assert.Equal(t, "date +%s", cmd.To[0].ShellCommand)
}

func TestApp(t *testing.T) {
	cmd := App("Google Chrome")
	assert.Equal(t, "Open -a 'Google Chrome.app'", cmd.Description)
	assert.Equal(t, "open -a 'Google Chrome.app'", cmd.To[0].ShellCommand)
}

func TestWindowManagement(t *testing.T) {
	cmd := WindowManagement("left-half")
	assert.Equal(t,
		"open raycast://extensions/raycast/window-management/left-half?launchType=background",
		cmd.To[0].ShellCommand)
}

func TestExecuteCommand(t *testing.T) {
	cmd := ExecuteCommand("pk-workspace/memcell/get-mem-cell", map[string]string{"cellName": "mem-cell-1"})

	require.Len(t, cmd.To, 1)
	assert.Equal(t,
		"open 'raycast://extensions/pk-workspace/memcell/get-mem-cell?arguments=%7B%22cellName%22%3A%22mem-cell-1%22%7D&launchType=background'",
		cmd.To[0].ShellCommand)
	assert.Equal(t, "Run pk-workspace/memcell/get-mem-cell", cmd.Description)
}

func TestExecuteCommandWithoutArgs(t *testing.T) {
	cmd := ExecuteCommand("/raycast/clipboard-history/clipboard-history", nil)
	assert.Equal(t,
		"open 'raycast://extensions/raycast/clipboard-history/clipboard-history?launchType=background'",
		cmd.To[0].ShellCommand)
}

func TestTapHold(t *testing.T) {
	tap := KeyCode(keycode.A)
	hold := Open("x")

	cmd := TapHold(tap, hold)
	assert.Empty(t, cmd.To)
	assert.Equal(t, tap.To, cmd.ToIfAlone)
	assert.Equal(t, hold.To, cmd.ToIfHeldDown)
	assert.Equal(t, TapHoldThreshold, cmd.Parameters.Get(karabiner.ParamToIfHeldDownThreshold))
	assert.Equal(t, "Tap:  / Hold: Open x", cmd.Description)
}

func TestSelectInputSourceAndSetVariable(t *testing.T) {
	sel := SelectInputSource("ru")
	require.NotNil(t, sel.To[0].SelectInputSource)
	assert.Equal(t, "ru", sel.To[0].SelectInputSource.Language)

	set := SetVariable("flag", 1)
	assert.Equal(t, &karabiner.SetVariable{Name: "flag", Value: 1}, set.To[0].SetVariable)
}
