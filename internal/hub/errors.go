package hub

import (
	"errors"
	"fmt"
)

var ErrNotRegistered = errors.New("domain is not registered with a hub")

// Error is a failure reported by the hub. Status is the HTTP status the hub
// answered with; it may be 200 when the hub signalled the error in the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("hub error (status %d): %s", e.Status, e.Message)
}
