package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/projector/internal/config"
	"github.com/spf13/pflag"
)

// Exit codes used by the projector binary.
const (
	ExitFailure = 1
	ExitUsage   = 2
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

const usage = `projector - directory-scoped key-value store.

Values are attached to directories; lookups walk from the working directory
up to the filesystem root, and deeper directories override their ancestors.

Usage:
  projector [options]                 print every visible value as JSON
  projector [options] KEY             print the value of KEY
  projector [options] add KEY VALUE   set KEY on the working directory
  projector [options] rm KEY          remove KEY from the working directory

Options:
`

// Parse processes command-line arguments. It returns the raw options, a
// boolean indicating the program should exit cleanly (help was requested),
// or an ExitError for malformed flags.
func Parse(args []string, output io.Writer) (*config.Options, bool, error) {
	flagSet := pflag.NewFlagSet("projector", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false
	flagSet.Usage = func() {
		fmt.Fprint(output, usage, flagSet.FlagUsages())
	}

	configFlag := flagSet.StringP("config", "c", "", "Path to the store file (default $HOME/projector/projector.json).")
	pwdFlag := flagSet.StringP("pwd", "p", "", "Directory to scope lookups and changes to (default current directory).")
	logLevelFlag := flagSet.StringP("log-level", "l", "", "Logging level: debug, info, warn or error (default warn).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return &config.Options{
		Args:       flagSet.Args(),
		ConfigPath: *configFlag,
		WorkingDir: *pwdFlag,
		LogLevel:   *logLevelFlag,
	}, false, nil
}
