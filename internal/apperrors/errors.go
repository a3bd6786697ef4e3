package apperrors

import "fmt"

// ValidationError is returned when a request is malformed. It is always
// raised before any external process is started.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ExecutionError is returned when the retrieval engine ran but exited with a
// non-zero status. Stderr holds the engine's diagnostic text when it was
// captured.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("retrieval engine exited with status %d", e.ExitCode)
}

// Is allows for error checking with errors.Is().
func (e *ExecutionError) Is(target error) bool {
	_, ok := target.(*ExecutionError)
	return ok
}

// Diagnostic returns the captured stderr text, falling back to a string
// representation of the failure when nothing was captured.
func (e *ExecutionError) Diagnostic() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Error()
}

// EnvironmentError is returned when the retrieval engine could not be run at
// all: the tool is missing, or the destination directory is unusable.
type EnvironmentError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *EnvironmentError) Is(target error) bool {
	_, ok := target.(*EnvironmentError)
	return ok
}

// Unwrap exposes the underlying cause.
func (e *EnvironmentError) Unwrap() error {
	return e.Err
}
