package cli

import "errors"

// Process exit statuses of the clique command.
const (
	ExitOK    = 0 // report written
	ExitRun   = 1 // clustering was cancelled or the report could not be written
	ExitUsage = 2 // bad flags, config file, parameters or input data
)

// ExitError attaches an exit status and the failed step to an error returned
// by a command.
type ExitError struct {
	Code int
	Op   string // e.g. "cannot read data.csv"
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// usageError reports a problem with what the user passed in.
func usageError(op string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Op: op, Err: err}
}

// runError reports a failure after the input was accepted.
func runError(op string, err error) *ExitError {
	return &ExitError{Code: ExitRun, Op: op, Err: err}
}

// ExitCode maps err to the process exit status. Errors without an ExitError
// in their chain count as run failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitRun
}
