package errors

import (
	"errors"
	"strconv"
)

// Failure is the result of a step that reported itself as failed. The
// failure message has already been written to the runner as an error
// command; whoever owns the process only needs to exit with ExitCode.
type Failure struct {
	Message  string
	ExitCode int
}

// NewFailure returns a Failure with ExitFailure as its exit code.
func NewFailure(message string) *Failure {
	return &Failure{Message: message, ExitCode: ExitFailure}
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return "step failed with exit code " + strconv.Itoa(f.ExitCode)
	}
	return f.Message
}

// AsFailure extracts a *Failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ExitCode maps an error to the process exit code: ExitSuccess for nil,
// the failure's own code for a *Failure, ExitFailure for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if f, ok := AsFailure(err); ok {
		return f.ExitCode
	}
	return ExitFailure
}
