package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is compares by code so errors.Is works across wrapped instances.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrAuthenticationRequired - no or invalid session
	ErrAuthenticationRequired = &DomainError{
		Code:    "AUTHENTICATION_REQUIRED",
		Message: "not authenticated",
	}

	// ErrNotAuthorized - acting on another user's resource
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "not allowed",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrNoActiveTimer - stop called with nothing running
	ErrNoActiveTimer = &DomainError{
		Code:    "NO_ACTIVE_TIMER",
		Message: "no running timer",
	}
)

// NewNotFoundError creates a NOT_FOUND error with extra context
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a VALIDATION_ERROR with the failure reason
func NewValidationError(reason string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: reason,
	}
}
