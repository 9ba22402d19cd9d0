package application

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound covers both a directory 404 and a lookup of a missing
	// user record. For order placement it is an invalid-input condition:
	// retrying the same request cannot succeed.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID rejects identifiers that cannot denote any user.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrDirectoryUnavailable means the user directory could not be reached
	// within the timeout. Transient; the caller may retry.
	ErrDirectoryUnavailable = errors.New("user service unavailable")
	// ErrDirectoryMisbehaving means the directory answered in a shape this
	// service does not understand. Surfaced apart from unavailability so
	// operators can alert differently.
	ErrDirectoryMisbehaving = errors.New("user validation failed")
)

// ValidationError reports a structural problem with an order request.
// It is raised before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
