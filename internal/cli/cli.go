package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/deansher/morphics-v0.1/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("morphics", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Morphics - a charter-driven component-assembly engine.

Usage:
  morphics -face FACE_LABEL [options] [CHARTER_PATH]

Arguments:
  CHARTER_PATH
    Path to a single .json/.hcl charter file or a directory of charter files.

Options:
`)
		flagSet.PrintDefaults()
	}

	charterFlag := flagSet.String("charter", "", "Path to the charter file or directory.")
	cFlag := flagSet.String("c", "", "Path to the charter file or directory (shorthand).")
	faceFlag := flagSet.String("face", "", "Label of the face to resolve each charter against.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxDepthFlag := flagSet.Int("max-depth", 0, "Maximum charter nesting depth. 0 uses the engine default.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *charterFlag != "" {
		path = *charterFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Charter path determined.", "path", path)

	if path == "" {
		slog.Debug("No charter path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *faceFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "the -face flag is required"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxDepthFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-depth: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CharterPath: path,
		Face:        *faceFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		MaxDepth:    *maxDepthFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
