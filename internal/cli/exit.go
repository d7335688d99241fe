package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Process exit codes.
const (
	CodeOK        = 0
	CodeError     = 1
	CodeConfig    = 2
	CodeFetch     = 3
	CodeDuplicate = 4

	// CodeInterrupted is the shell convention for SIGINT.
	CodeInterrupted = 130
)

// ExitError carries an explicit exit code. Commands return it when the
// default mapping in ExitCode does not fit, e.g. listings that fail to
// fetch.
type ExitError struct {
	Code int
	Err  error
	// Reported is set when the command already printed the failure.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// fetchExit marks a registry failure in a listing command. Config errors
// keep their own code.
func fetchExit(err error) error {
	if err == nil || errors.IsFatal(err) {
		return err
	}
	return &ExitError{Code: CodeFetch, Err: err}
}

// reported wraps an error the command already printed.
func reported(code int, err error) error {
	return &ExitError{Code: code, Err: err, Reported: true}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return CodeOK
	}
	var ee *ExitError
	if stderrors.As(err, &ee) {
		return ee.Code
	}
	if stderrors.Is(err, context.Canceled) {
		return CodeInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigMissing, errors.ErrCodeConfigInvalid:
		return CodeConfig
	case errors.ErrCodeDestinationExists:
		return CodeDuplicate
	}
	return CodeError
}
