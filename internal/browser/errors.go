package browser

import "fmt"

// NotInteractableError represents a failed interaction with a page element
// (detached node, hidden element, missing option).
type NotInteractableError struct {
	Selector string
	Action   string
	Cause    error
}

func (e *NotInteractableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("element %q not interactable (%s): %v", e.Selector, e.Action, e.Cause)
	}
	return fmt.Sprintf("element %q not interactable (%s)", e.Selector, e.Action)
}

func (e *NotInteractableError) Unwrap() error {
	return e.Cause
}

// UploadError represents a failed file upload, including a path that does
// not resolve to an existing file.
type UploadError struct {
	Selector string
	Path     string
	Cause    error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload of %s to %q failed: %v", e.Path, e.Selector, e.Cause)
	}
	return fmt.Sprintf("upload of %s to %q failed", e.Path, e.Selector)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
