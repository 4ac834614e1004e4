package reporter

import (
	"errors"
	"fmt"
)

// RuntimeError wraps errors that prevented the tool from producing a report
// at all: missing input, bad configuration, write failures. These map to
// exit code 2.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError reports whether err is or wraps a RuntimeError.
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return errors.As(err, &runtimeErr)
}

// ReportError wraps errors recorded by a generated report: a run containing
// failing tests, or a document the parser rejected. These map to exit
// code 1.
type ReportError struct {
	Err error
}

func (e *ReportError) Error() string {
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error) *ReportError {
	return &ReportError{Err: err}
}

// IsReportError reports whether err is or wraps a ReportError.
func IsReportError(err error) bool {
	var reportErr *ReportError
	return errors.As(err, &reportErr)
}

// ErrRunFailed is recorded when the report was generated but the run
// contains tests that did not pass.
var ErrRunFailed = errors.New("test run contains failing tests")
