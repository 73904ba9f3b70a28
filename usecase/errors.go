package usecase

import (
	"errors"
	"fmt"
)

// Domain errors shared by the services. Handlers map these to HTTP
// statuses; anything else is a 500.
var (
	// ErrUnauthorized covers both unknown usernames and wrong
	// passwords so responses cannot be used to enumerate accounts.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers absent resources and foreign-owned ones
	// alike; cross-user access never surfaces as a permission error.
	ErrNotFound = errors.New("not found")
)

// RefError reports a referenced folder or tag that does not exist or
// is owned by another user. Maps to a 400.
type RefError struct {
	Kind string // "folders" or "tags"
}

func (e *RefError) Error() string {
	return fmt.Sprintf("There are no %s with this ID", e.Kind)
}

// SignupError is a field-level signup validation failure. Maps to a
// 422 with the message as the body.
type SignupError struct {
	Message string
}

func (e *SignupError) Error() string {
	return e.Message
}
