package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/advent2020/internal/app"
	"github.com/vk/advent2020/internal/report"
)

// Environment variables that provide flag defaults.
const (
	EnvInputDir  = "ADVENT_INPUT_DIR"
	EnvLogLevel  = "ADVENT_LOG_LEVEL"
	EnvLogFormat = "ADVENT_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.AppConfig, bool, error) {
	slog.Debug("CLI parser started.")
	cfg := &app.AppConfig{}
	ran := false

	cmd := &cobra.Command{
		Use:   "advent2020 [flags] <day>",
		Short: "Advent of Code 2020 puzzle runner (days 01-07)",
		Long: `advent2020 solves one Advent of Code 2020 puzzle per invocation.

DAY is a puzzle number such as 03 or 3. The input is read from
<input-dir>/dayNN.txt unless a manifest points elsewhere.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			if len(args) == 1 {
				cfg.Day = NormalizeDay(args[0])
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.ManifestPath, "manifest", "m", "", "Path to an HCL manifest file or a directory of .hcl files.")
	flags.StringVarP(&cfg.InputDir, "input-dir", "i", envOr(EnvInputDir, "input"), "Directory holding the dayNN.txt input files.")
	flags.StringVar(&cfg.LogLevel, "log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	flags.StringVarP(&cfg.OutputFormat, "format", "f", report.FormatText, "Answer output format. Options: 'text', 'json' or 'yaml'.")
	flags.BoolVarP(&cfg.List, "list", "l", false, "List the available puzzles and exit.")

	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if cfg.Day == "" && !cfg.List {
		slog.Debug("No day provided, printing usage and exiting.")
		if err := cmd.Usage(); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// NormalizeDay pads a single-digit day to the two-digit form used as the
// puzzle id. Anything else is returned unchanged.
func NormalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if len(day) == 1 && day[0] >= '0' && day[0] <= '9' {
		return "0" + day
	}
	return day
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
