// Package cli parses command-line arguments into the application
// configuration and owns process-level concerns like exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/umlfold/umlfold/internal/app"
)

// ExitError carries a specific process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the populated config,
// a boolean indicating a clean early exit (help, no input), or an
// ExitError for invalid usage.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("umlfold", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
umlfold - fold XMI model exports into a normalized UML document.

Usage:
  umlfold [options] INPUT_PATH

Arguments:
  INPUT_PATH
    Path to a single .xmi/.xml file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("out", "", "Output directory. Empty writes to standard output.")
	formatFlag := flagSet.String("format", "", "Output encoding: 'json' or 'yaml'. Default: json.")
	configFlag := flagSet.String("config", "", "Path to an umlfold.hcl configuration file.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent conversions. Default: 1.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Log level: 'debug', 'info', 'warn', or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "exactly one input path is expected"}
	}

	format := strings.ToLower(*formatFlag)
	if format != "" && format != "json" && format != "yaml" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'json' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *workersFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "workers must not be negative"}
	}

	return &app.Config{
		InputPath:  flagSet.Arg(0),
		ConfigPath: *configFlag,
		OutputDir:  *outFlag,
		Format:     format,
		Workers:    *workersFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}
