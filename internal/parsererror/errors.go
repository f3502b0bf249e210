// Package parsererror defines the error taxonomy of the extraction pipeline.
package parsererror

import "fmt"

// ExtractionError is a stage-level failure. It aborts processing for the
// whole document; no partial result is returned. The message names the
// failing stage so the transport layer can surface it to callers.
type ExtractionError struct {
	Stage  string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to extract %s: %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to extract %s: %s", e.Stage, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ParseError is a line-level miss: one transaction line did not fit the
// grammar. It is recovered locally, never propagated past the extractor.
type ParseError struct {
	Line  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s in line %q: %v", e.Field, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError rejects structurally invalid input before the pipeline
// runs (wrong extension, empty payload).
type InvalidFormatError struct {
	FileName string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid input file %q: %s", e.FileName, e.Msg)
}
