package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/longrun/internal/harness"
)

// InitOptions holds flags for the init command.
type InitOptions struct {
	*RootOptions
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init <project-path> <feature-name> <description>",
		Short: "Scaffold the long-running harness for a project",
		Long: `Scaffold the long-running development harness for a project.

Creates long_running/<feature-name>/ under the project path (creating the
project path itself if missing) and writes three files:

  feature_list.json   feature backlog seeded with two starter entries
  progress.txt        session progress log with a first session entry
  init.sh             executable environment bootstrap script

Existing harness files are overwritten. Use kebab-case for the feature name.

Example:
  longrun init ./myapp mvp "CLI todo app with local storage"`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, args[0], args[1], args[2], cmd)
		},
	}

	return cmd
}

func runInit(opts *InitOptions, projectPath, featureName, description string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	initializer := harness.NewInitializer(harness.SystemClock())
	result, err := initializer.Initialize(harness.Options{
		ProjectPath: projectPath,
		FeatureName: featureName,
		Description: description,
	})
	if err != nil {
		code := mapInitErrorToCode(err)
		return outputInitError(formatter, code, err.Error())
	}

	return outputInitSuccess(formatter, result, featureName, description)
}

// mapInitErrorToCode maps an initialization error to an error code.
func mapInitErrorToCode(err error) string {
	var nameErr *harness.NameError
	if errors.As(err, &nameErr) {
		return ErrCodeInvalidName
	}

	var initErr *harness.InitError
	if errors.As(err, &initErr) {
		switch initErr.Op {
		case "resolve":
			return ErrCodeResolve
		case "mkdir":
			return ErrCodeMkdir
		case "write", "chmod":
			return ErrCodeWriteFailed
		}
	}
	return ErrCodeGeneric
}

// outputInitSuccess outputs the confirmation for each file written and the
// next-steps summary.
func outputInitSuccess(formatter *OutputFormatter, result *harness.Result, featureName, description string) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	// Human-readable text output
	if result.CreatedProjectDir {
		fmt.Fprintf(formatter.Writer, "Created project directory: %s\n", result.ProjectPath)
	}

	fmt.Fprintf(formatter.Writer, "Initializing harness for: %s\n", result.ProjectName)
	fmt.Fprintf(formatter.Writer, "  Description: %s\n\n", description)

	for _, file := range result.Files {
		fmt.Fprintf(formatter.Writer, "✓ Created %s\n", file)
	}

	fmt.Fprintln(formatter.Writer)
	fmt.Fprintln(formatter.Writer, "✓ Harness initialization complete")
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintln(formatter.Writer, "Next steps:")
	fmt.Fprintf(formatter.Writer, "  1. cd %s\n", result.ProjectPath)
	fmt.Fprintf(formatter.Writer, "  2. Edit %s/%s/%s to add your features\n",
		harness.HarnessRoot, featureName, harness.FeatureListFile)
	fmt.Fprintln(formatter.Writer, "  3. git init && git add . && git commit -m 'Initial setup'")
	fmt.Fprintln(formatter.Writer, "  4. Start implementing features one at a time")

	return nil
}

// outputInitError outputs an initialization error.
func outputInitError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	// Argument and filesystem errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
