package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hyperkey", cmd.Use)
	assert.Contains(t, cmd.Long, "Hyper key")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"build", "validate", "test", "shortcuts"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestBuildFlagsOnRootAndBuild(t *testing.T) {
	root := NewRootCommand()
	build, _, err := root.Find([]string{"build"})
	require.NoError(t, err)

	for _, cmd := range []*cobra.Command{root, build} {
		t.Run(cmd.Name(), func(t *testing.T) {
			outputFlag := cmd.Flags().Lookup("output")
			require.NotNil(t, outputFlag)
			assert.Equal(t, "o", outputFlag.Shorthand)
			assert.Equal(t, DefaultOutput, outputFlag.DefValue)

			for _, name := range []string{"laptop", "check", "with"} {
				assert.NotNil(t, cmd.Flags().Lookup(name), name)
			}
		})
	}
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	updateFlag := testCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "false", updateFlag.DefValue)

	filterFlag := testCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestShortcutsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	shortcutsCmd, _, err := cmd.Find([]string{"shortcuts"})
	require.NoError(t, err)

	langFlag := shortcutsCmd.Flags().Lookup("lang")
	require.NotNil(t, langFlag)
	assert.Equal(t, "en", langFlag.DefValue)
	assert.NotNil(t, shortcutsCmd.Flags().Lookup("layout"))
}

func TestFormatValidation(t *testing.T) {
	// Test valid formats
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.True(t, isValidFormat("yaml"))

	// Test invalid formats
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--format", "invalid", "validate", "x.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr.String(), `Error [E001]: invalid format "invalid"`)
}

func TestRootWithoutSubcommandBuilds(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dist", "karabiner.json")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", output})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Generated")

	_, err := os.Stat(output)
	require.NoError(t, err)
}

func TestRootRejectsArguments(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"compile"})

	require.Error(t, cmd.Execute())
}

func TestVerboseLogsToStderr(t *testing.T) {
	output := filepath.Join(t.TempDir(), "karabiner.json")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"build", "-v", "--format", "json", "-o", output})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "rules built")
	assert.Contains(t, errOut.String(), "document written")
	assert.NotContains(t, out.String(), "rules built")
}
