package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/layer"
	"github.com/roach88/hyperkey/internal/rules"
	"github.com/roach88/hyperkey/internal/schema"
)

// DefaultOutput is where build writes the document.
const DefaultOutput = "dist/karabiner.json"

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Laptop bool     // use the built-in fn key for language switching
	Output string   // output file path
	Check  bool     // compare against the existing file instead of writing
	With   []string // optional rule sets
}

// BuildResult summarizes a build.
type BuildResult struct {
	Output       string   `json:"output" yaml:"output"`
	Digest       string   `json:"digest" yaml:"digest"`
	Rules        int      `json:"rules" yaml:"rules"`
	Manipulators int      `json:"manipulators" yaml:"manipulators"`
	Laptop       bool     `json:"laptop" yaml:"laptop"`
	Extras       []string `json:"extras,omitempty" yaml:"extras,omitempty"`
	Written      bool     `json:"written" yaml:"written"`
	UpToDate     bool     `json:"up_to_date,omitempty" yaml:"up_to_date,omitempty"`
}

// AuthoringError is one problem found in the rule definitions.
type AuthoringError struct {
	Code    string `json:"code" yaml:"code"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate karabiner.json",
		Long: `Generate the Karabiner-Elements configuration.

The layer definitions are checked for authoring errors and the generated
document is validated against the embedded schema before anything is
written. Identical definitions always produce byte-identical output.

Exit codes:
  0 - Document written (or up to date with --check)
  1 - --check found the existing file stale
  2 - Command error (invalid definitions, unknown rule set, I/O failure)

Examples:
  hyperkey build
  hyperkey build --laptop
  hyperkey build --with navigation,deletion -o ~/.config/karabiner/karabiner.json
  hyperkey build --check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	addBuildFlags(cmd, opts)

	return cmd
}

func addBuildFlags(cmd *cobra.Command, opts *BuildOptions) {
	cmd.Flags().BoolVar(&opts.Laptop, "laptop", false, "use the built-in fn key for language switching")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", DefaultOutput, "output file path")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "exit 1 if the output file differs from the generated document")
	cmd.Flags().StringSliceVar(&opts.With, "with", nil, fmt.Sprintf("optional rule sets %v", rules.ExtraNames()))
}

func runBuild(opts *BuildOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := opts.logger().With(zap.String("command", "build"))

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	if errs := definitionErrors(); len(errs) > 0 {
		return outputAuthoringErrors(formatter, errs)
	}

	ruleOpts := rules.Options{Laptop: opts.Laptop, Extras: opts.With}
	doc, err := rules.Document(ruleOpts)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBuildFailed, err.Error(), nil)
	}
	log.Debug("rules built",
		zap.Bool("laptop", opts.Laptop),
		zap.Strings("extras", opts.With),
		zap.Int("rules", len(doc.Rules())))

	if errs := schema.ValidateDocument(doc); len(errs) > 0 {
		return outputAuthoringErrors(formatter, schemaErrors(errs))
	}

	digest, err := karabiner.Digest(doc)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBuildFailed, err.Error(), nil)
	}

	result := BuildResult{
		Output:       output,
		Digest:       digest,
		Rules:        len(doc.Rules()),
		Manipulators: countManipulators(doc.Rules()),
		Laptop:       opts.Laptop,
		Extras:       opts.With,
	}

	if opts.Check {
		return checkOutput(formatter, log, result)
	}

	if _, err := karabiner.Write(output, doc); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", output, err), nil)
	}
	result.Written = true
	log.Info("document written", zap.String("path", output), zap.String("digest", digest))

	return outputBuildSuccess(formatter, result)
}

// checkOutput compares the digest of the file on disk with the generated
// document without writing anything.
func checkOutput(formatter *OutputFormatter, log *zap.Logger, result BuildResult) error {
	data, err := os.ReadFile(result.Output)
	if errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(ExitFailure, ErrCodeStale, fmt.Sprintf("%s does not exist (run hyperkey build)", result.Output), nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeReadFailed, fmt.Sprintf("reading %s: %v", result.Output, err), nil)
	}

	existing, err := karabiner.DigestJSON(data)
	if err != nil {
		log.Debug("existing file is not canonical JSON", zap.Error(err))
	}
	if err != nil || existing != result.Digest {
		return formatter.Fail(ExitFailure, ErrCodeStale,
			fmt.Sprintf("%s is out of date (run hyperkey build)", result.Output),
			map[string]string{"expected": result.Digest, "actual": existing})
	}

	result.UpToDate = true
	return outputBuildSuccess(formatter, result)
}

// definitionErrors runs the layer validator over the built-in definitions.
func definitionErrors() []AuthoringError {
	errs := rules.Validate()
	out := make([]AuthoringError, 0, len(errs))
	for _, e := range errs {
		out = append(out, fromLayerError(e))
	}
	return out
}

func fromLayerError(e layer.ValidationError) AuthoringError {
	return AuthoringError{Code: e.Code, Path: e.Path, Message: e.Message}
}

func schemaErrors(errs []schema.Error) []AuthoringError {
	out := make([]AuthoringError, 0, len(errs))
	for _, e := range errs {
		out = append(out, AuthoringError{Code: e.Code, Path: e.Path, Message: e.Error()})
	}
	return out
}

func countManipulators(rs []karabiner.Rule) int {
	n := 0
	for _, r := range rs {
		n += len(r.Manipulators)
	}
	return n
}

// outputBuildSuccess outputs a successful build.
func outputBuildSuccess(formatter *OutputFormatter, result BuildResult) error {
	if formatter.Structured() {
		return formatter.Encode(CLIResponse{Status: "ok", Data: result, Digest: result.Digest})
	}

	w := formatter.Writer
	if result.UpToDate {
		fmt.Fprintf(w, "✓ %s is up to date\n", result.Output)
	} else {
		fmt.Fprintf(w, "✓ Generated %d rule(s), %d manipulator(s)\n", result.Rules, result.Manipulators)
		fmt.Fprintf(w, "Wrote %s\n", result.Output)
	}
	formatter.VerboseLog("digest: %s", result.Digest)
	return nil
}

// outputAuthoringErrors reports definition or schema errors. Nothing is
// written, and these are command-level errors (exit code 2).
func outputAuthoringErrors(formatter *OutputFormatter, errs []AuthoringError) error {
	if formatter.Structured() {
		if err := formatter.Encode(CLIResponse{
			Status: "error",
			Data:   errs,
			Error:  &CLIError{Code: errs[0].Code, Message: errs[0].Message},
		}); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("build failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Build failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range errs {
		if e.Path != "" {
			fmt.Fprintf(formatter.Writer, "%s\n", e.Path)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", e.Code, e.Message)
	}

	return NewExitError(ExitCommandError, fmt.Sprintf("build failed with %d error(s)", len(errs)))
}
