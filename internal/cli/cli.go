package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
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

// Config holds the validated command-line parameters for one invocation.
type Config struct {
	// Paths are configuration files or directories to inspect. A
	// directory is expanded to the config files beneath it.
	Paths []string

	// ConfPath overrides the directory bare filenames are resolved
	// against. Empty means the CONF_PATH environment variable, then the
	// current directory.
	ConfPath string

	// Entry restricts output to a single top-level subtree (e.g.
	// "Optimizer"). Empty prints the whole tree.
	Entry string

	LogFormat string
	LogLevel  string
	NoColor   bool
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("reify", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
reify - inspect and validate declarative object-graph configurations.

Usage:
  reify [options] CONFIG_PATH...

Arguments:
  CONFIG_PATH
    One or more configuration files (.yml, .yaml, .hcl) or directories
    containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	confPathFlag := flagSet.String("conf-path", "", "Directory searched for bare config filenames (default: $CONF_PATH).")
	entryFlag := flagSet.String("entry", "", "Print only the named top-level entry (e.g. 'Optimizer').")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored output.")

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

	return &Config{
		Paths:     flagSet.Args(),
		ConfPath:  *confPathFlag,
		Entry:     *entryFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		NoColor:   *noColorFlag,
	}, false, nil
}
