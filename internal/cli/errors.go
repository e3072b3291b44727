package cli

import (
	"errors"
	"fmt"

	"github.com/alexshd/bigbench"
)

// ExitCode is the process exit status for a failed command.
type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitInvalidInput ExitCode = 2 // Bad id, size, argument or plan
	ExitUndetermined ExitCode = 3 // Percent error could not be computed
)

// CLIError carries an exit code alongside the error.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// wrapError classifies err into a CLIError with a matching exit code.
func wrapError(message string, err error) *CLIError {
	code := ExitGeneralError
	switch {
	case errors.Is(err, bigbench.ErrInvalidAlgorithm),
		errors.Is(err, bigbench.ErrInvalidSize),
		errors.Is(err, errBadArgument):
		code = ExitInvalidInput
	case errors.Is(err, bigbench.ErrUndetermined):
		code = ExitUndetermined
	}
	return &CLIError{Code: code, Message: message, Err: err}
}

var errBadArgument = errors.New("bad argument")
