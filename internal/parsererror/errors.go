// Package parsererror defines the typed errors surfaced by the receipt
// processing boundary. Field-not-found is never an error: it is modeled as an
// optional result and normalized to a sentinel by the pipeline.
package parsererror

import "fmt"

// OCRUnavailableError means the recognition engine failed to initialize.
// For the service front-end this is fatal per process lifetime and reported
// as a server error to every request.
type OCRUnavailableError struct {
	Reason string
	Err    error
}

func (e *OCRUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ocr engine unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("ocr engine unavailable: %s", e.Reason)
}

func (e *OCRUnavailableError) Unwrap() error {
	return e.Err
}

// EmptyInputError means no bytes were provided or no file was chosen.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Source)
}

// NoTextError means recognition produced no usable text for the input.
type NoTextError struct {
	Source string
}

func (e *NoTextError) Error() string {
	return fmt.Sprintf("no text recognized in %s", e.Source)
}

// ExtractionError wraps an unexpected failure inside recognition or
// extraction. Not expected in normal operation, but never swallowed.
type ExtractionError struct {
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
