package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"

	// Logger is set in PersistentPreRunE. Commands run outside the root
	// command get a no-op logger.
	Logger *zap.Logger
}

// logger returns the invocation logger, never nil.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the hyperkey CLI. Run without
// a subcommand it behaves like build.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	buildOpts := &BuildOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "hyperkey",
		Short: "hyperkey - Karabiner-Elements rule generator",
		Long: `Generate the karabiner.json rule set for a Hyper key with nested sub-layers.

Caps Lock becomes a Hyper key (all four modifiers at once). Holding Hyper and
a sub-layer key (o, w, c, g, s, a, m) arms that sub-layer; the next key picks
the action. Running hyperkey without a subcommand writes dist/karabiner.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				formatter := &OutputFormatter{Format: "text", Writer: cmd.ErrOrStderr()}
				return formatter.Fail(ExitCommandError, ErrCodeGeneric,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(buildOpts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	// The bare command accepts the build flags too.
	addBuildFlags(cmd, buildOpts)

	// Add subcommands
	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewShortcutsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
