package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	logpkg "github.com/haukened/rr-blocklist/internal/blocklist/common/log"
	"github.com/haukened/rr-blocklist/internal/blocklist/config"
	"github.com/haukened/rr-blocklist/internal/blocklist/domain"
	"github.com/haukened/rr-blocklist/internal/blocklist/services/generator"
)

// Build describes the binary being run.
type Build struct {
	Name        string // command name shown in usage and version output
	Version     string
	Description string // long help text
	Header      string // banner written at the top of every blocklist
}

// VersionString returns the line printed by --version.
func (b Build) VersionString() string {
	return fmt.Sprintf("%s\t %s \t GPLv3", b.Version, b.Name)
}

// NewCommand builds the root command. stdout receives help, version and
// informational output; stderr receives warnings and errors.
func NewCommand(b Build, stdout, stderr io.Writer) *cobra.Command {
	var (
		output      string
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:           b.Name + " [flags] input_file_list...",
		Short:         "Convert domain lists into a pi-hole blocklist",
		Long:          b.Description,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(stdout, b.VersionString())
				return &ExitError{Code: ExitVersion}
			}

			overrides := map[string]any{}
			if cmd.Flags().Changed("output") {
				overrides["output"] = output
			}
			return execute(b, args, overrides, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolP("help", "?", false, "Show This Help Message")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version and quit")
	flags.StringVarP(&output, "output", "o", config.DEFAULT_APP_CONFIG.Output, "Output file")

	return cmd
}

// execute loads configuration, runs the generator and reports the outcome.
func execute(b Build, inputs []string, overrides map[string]any, stdout, stderr io.Writer) error {
	if len(inputs) == 0 {
		logpkg.Error(nil, "No input file(s) given, see --help")
		return &ExitError{Code: ExitUsage, Err: domain.ErrNoInput}
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		logpkg.Error(map[string]any{"error": err.Error()}, "Configuration error")
		return &ExitError{Code: ExitConfig, Err: fmt.Errorf("%w: %w", domain.ErrConfig, err)}
	}

	if err := logpkg.Configure(cfg.Env, cfg.LogLevel, stdout, stderr); err != nil {
		logpkg.Error(map[string]any{"error": err.Error()}, "Logging configuration error")
		return &ExitError{Code: ExitConfig, Err: fmt.Errorf("%w: %w", domain.ErrConfig, err)}
	}
	logger := logpkg.GetLogger()

	logger.Info(map[string]any{"files": strings.Join(inputs, " ")}, "Processing file(s)")
	logger.Info(map[string]any{"output": cfg.Output}, "Writing output")

	gen := generator.New(generator.Options{
		Header:   b.Header,
		NullAddr: cfg.NullAddr,
		Logger:   logger,
	})

	res, err := gen.Generate(inputs, cfg.Output)
	if err != nil {
		return classify(logger, cfg.Output, err)
	}

	fields := res.Summary.Fields()
	fields["files_read"] = res.FilesRead
	fields["files_skipped"] = len(res.FilesSkipped)
	fields["warnings"] = res.Warnings
	fields["output"] = res.Output
	logger.Info(fields, "Blocklist written")
	return nil
}

// classify logs a generator failure. Every failure after the inputs have
// been read ends the run with ExitOutputWrite.
func classify(logger logpkg.Logger, output string, err error) error {
	if errors.Is(err, domain.ErrOutputWrite) {
		logger.Error(map[string]any{"error": err.Error()},
			"Could not write to output file: "+output+" Please check directory exists and permissions allow writing")
	} else {
		logger.Error(map[string]any{"error": err.Error()}, "Unexpected failure")
	}
	return &ExitError{Code: ExitOutputWrite, Err: err}
}

// Run parses args, executes the command and returns the process exit code.
func Run(b Build, args []string, stdout, stderr io.Writer) int {
	// until configuration is loaded, report through a default console logger
	def := config.DEFAULT_APP_CONFIG
	if err := logpkg.Configure(def.Env, def.LogLevel, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Logging configuration error: %v\n", err)
		return ExitConfig
	}

	cmd := NewCommand(b, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// anything else comes from flag parsing
	logpkg.Error(map[string]any{"error": err.Error()}, "Invalid usage, see --help")
	return ExitUsage
}
