package main

import (
	"errors"
	"fmt"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
	exitCodeUsage   = 2
)

// UsageError reports invalid command line options.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid options: %v", e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// GetExitCode maps the result of app.run to a process exit code.
func GetExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return exitCodeSuccess
	case errors.As(err, &usageErr):
		return exitCodeUsage
	default:
		return exitCodeError
	}
}
