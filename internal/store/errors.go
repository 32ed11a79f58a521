package store

import "errors"

var (
	// ErrUnauthorized is returned when the current session lacks the role
	// an operation requires, or when no session is present at all.
	ErrUnauthorized = errors.New("store: unauthorized")
	// ErrNotFound signals that the requested record does not exist. It is
	// a sentinel, not a failure: callers that treat absence as benign can
	// check it with errors.Is and move on.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidCredentials is returned for every failed authentication
	// regardless of cause, so that unknown usernames, wrong passwords and
	// inactive accounts are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("store: invalid credentials")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
