package cli

import "errors"

// Process exit codes.
const (
	ExitOK    = 0
	ExitParse = 1 // syntax error, or any other failure
	ExitLoad  = 2 // source could not be loaded
	ExitFatal = 3 // allocator or invariant failure
)

// exitError carries the exit code for err. Reported errors were already
// printed by the command.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitParse
}
