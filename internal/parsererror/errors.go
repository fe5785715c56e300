// Package parsererror defines the error types surfaced by the extraction
// pipeline. Failures are converted to report rows at the document boundary,
// so these types mainly carry the offending file name for logs and messages.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when a processing run receives no documents.
var ErrEmptyBatch = errors.New("no documents to process")

// ReadError represents a document that could not be read or decoded.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ValidationError represents an upload rejected before extraction.
type ValidationError struct {
	File   string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.File, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input that does not look like a PDF
// document at all.
type InvalidFormatError struct {
	File string
	Msg  string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s", e.File, e.Msg)
}
