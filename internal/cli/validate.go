package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	File   string         `json:"file" yaml:"file"`
	Valid  bool           `json:"valid" yaml:"valid"`
	Digest string         `json:"digest,omitempty" yaml:"digest,omitempty"`
	Errors []schema.Error `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a karabiner.json against the schema",
		Long: `Validate an existing karabiner.json against the embedded schema.

Checks the document envelope, every manipulator, key code and modifier name
without touching the file. Defaults to ` + DefaultOutput + `.

Exit codes:
  0 - Document is valid
  1 - Schema violations found
  2 - File could not be read`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultOutput
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := opts.logger().With(zap.String("command", "validate"))

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeReadFailed, fmt.Sprintf("reading %s: %v", path, err), nil)
	}
	formatter.VerboseLog("Read %d byte(s) from %s", len(data), path)

	result := ValidationResult{File: path}
	result.Errors = schema.ValidateNamed(path, data)
	log.Debug("schema checked", zap.String("path", path), zap.Int("violations", len(result.Errors)))

	if len(result.Errors) > 0 {
		return outputValidationErrors(formatter, result)
	}

	result.Valid = true
	if digest, err := karabiner.DigestJSON(data); err == nil {
		result.Digest = digest
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Structured() {
		return formatter.Encode(CLIResponse{Status: "ok", Data: result, Digest: result.Digest})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is valid\n", result.File)
	formatter.VerboseLog("digest: %s", result.Digest)
	return nil
}

// outputValidationErrors outputs every schema violation.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	errs := result.Errors
	if formatter.Structured() {
		if err := formatter.Encode(CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Pos.IsValid() {
			fmt.Fprintf(formatter.Writer, "%s:%d:%d\n", err.Pos.Filename(), err.Pos.Line(), err.Pos.Column())
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
