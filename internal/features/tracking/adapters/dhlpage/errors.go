package dhlpage

import (
	"errors"
	"fmt"
)

var (
	// ErrPatternNotFound is returned when the page has no initialState assignment.
	ErrPatternNotFound = errors.New("initial state pattern not found")
	// ErrMalformedLiteral is returned when the captured literal is too short to hold a quoted string.
	ErrMalformedLiteral = errors.New("malformed initial state literal")
	// ErrInvalidJSON is returned when the extracted text is not JSON.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrSchemaViolation is returned when a required field is missing or has the wrong type.
	ErrSchemaViolation = errors.New("schema violation")
)

// SchemaError reports the upstream field path that broke decoding.
type SchemaError struct {
	// Path uses upstream field names, e.g. "sendungen[0].sendungsdetails.sendungsverlauf.fortschritt".
	Path string
	// Reason describes what was wrong with the field.
	Reason string
}

func (e *SchemaError) Error() string {
	path := e.Path
	if path == "" {
		path = "document root"
	}
	return fmt.Sprintf("%s at %s: %s", ErrSchemaViolation, path, e.Reason)
}

// Unwrap lets errors.Is match ErrSchemaViolation.
func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// Stage names the pipeline step that failed.
type Stage string

const (
	// StageExtract is the HTML to JSON text step.
	StageExtract Stage = "extract"
	// StageDecode is the JSON text to domain step.
	StageDecode Stage = "decode"
)

// PageError wraps a pipeline failure with the stage that produced it.
type PageError struct {
	Stage Stage
	Err   error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
