package forms

import (
	"errors"
	"fmt"
)

// ErrNoMatch signals that no known-data key reached the similarity
// threshold. It is non-fatal: the caller falls back to content generation.
var ErrNoMatch = errors.New("no known-data key matched")

// NoFieldNameError indicates that no usable name could be derived for an
// element from any of its attributes or associated labels.
type NoFieldNameError struct {
	Selector string
}

func (e *NoFieldNameError) Error() string {
	return fmt.Sprintf("no field name derivable for element %q", e.Selector)
}

// GenerationError indicates that content generation failed for a field.
// The element is reported and skipped; an empty value is never filled in
// its place.
type GenerationError struct {
	FieldName string
	Cause     error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content generation failed for field %q: %v", e.FieldName, e.Cause)
	}
	return fmt.Sprintf("content generation failed for field %q", e.FieldName)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// FillError indicates that applying a resolved value through the browser
// layer failed (element detached, not interactable, option missing).
type FillError struct {
	FieldName string
	Kind      Kind
	Cause     error
}

func (e *FillError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fill failed for %s field %q: %v", e.Kind, e.FieldName, e.Cause)
	}
	return fmt.Sprintf("fill failed for %s field %q", e.Kind, e.FieldName)
}

func (e *FillError) Unwrap() error {
	return e.Cause
}

// FileNotFoundError indicates that an upload path does not resolve to an
// existing local file. No upload is attempted.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("upload file not found: %s", e.Path)
}
