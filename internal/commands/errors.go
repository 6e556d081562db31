package commands

import "errors"

// ErrHubCall marks failures of an outbound hub call made by a command. The
// command's local effects have already been applied.
var ErrHubCall = errors.New("hub call failed")

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
