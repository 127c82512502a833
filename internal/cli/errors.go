package cli

import (
	"errors"
	"fmt"
)

// ValidationError indicates a bad flag or argument combination.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// EditError indicates the addon list came back from the editor unusable.
type EditError struct {
	Err error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edited addon list rejected: %v", e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// ErrAborted is returned when the user declines to continue.
var ErrAborted = errors.New("aborted")

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
