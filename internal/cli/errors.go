package cli

import "errors"

// codeError carries the process exit code for an error.
type codeError struct {
	code int
	err  error
}

func (e *codeError) Error() string { return e.err.Error() }

func (e *codeError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return &codeError{code: exitUserError, err: err}
}

// sysError marks err as an environment failure such as I/O.
func sysError(err error) error {
	if err == nil {
		return nil
	}
	return &codeError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to a process exit code.
// Errors raised by cobra itself (unknown flags, wrong arg counts) are user
// errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *codeError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
