package trx

import (
	"errors"
	"fmt"
)

// MissingInputFileError indicates the input document does not exist or
// cannot be read.
type MissingInputFileError struct {
	Path string
	Err  error
}

func (e *MissingInputFileError) Error() string {
	return fmt.Sprintf("missing input file %q: %v", e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *MissingInputFileError) Unwrap() error {
	return e.Err
}

// IsMissingInputFile checks if the error is or wraps a MissingInputFileError
func IsMissingInputFile(err error) bool {
	var missingErr *MissingInputFileError
	return err != nil && errors.As(err, &missingErr)
}

// MalformedDocumentError indicates the document could not be decoded as a
// TRX test run.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed TRX document: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// IsMalformedDocument checks if the error is or wraps a MalformedDocumentError
func IsMalformedDocument(err error) bool {
	var docErr *MalformedDocumentError
	return err != nil && errors.As(err, &docErr)
}

// MalformedTimestampError indicates a timestamp attribute did not match any
// accepted pattern after normalization.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q", e.Value)
}

// IsMalformedTimestamp checks if the error is or wraps a MalformedTimestampError
func IsMalformedTimestamp(err error) bool {
	var tsErr *MalformedTimestampError
	return err != nil && errors.As(err, &tsErr)
}

// MalformedDurationError indicates a duration attribute did not match
// "H:MM:SS[.fraction]".
type MalformedDurationError struct {
	Value string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed duration %q", e.Value)
}

// IsMalformedDuration checks if the error is or wraps a MalformedDurationError
func IsMalformedDuration(err error) bool {
	var durErr *MalformedDurationError
	return err != nil && errors.As(err, &durErr)
}
