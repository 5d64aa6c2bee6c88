// Command hyperkey generates the Karabiner-Elements configuration for a
// Hyper key with nested sub-layers.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/roach88/hyperkey/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// An ExitError has already been reported through the formatter.
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return cli.GetExitCode(err)
	}

	// Flag and argument errors come straight from cobra.
	fmt.Fprintln(stderr, "hyperkey:", err)
	return cli.ExitCommandError
}
