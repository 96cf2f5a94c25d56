package github

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a sync run failure
type ErrorType string

const (
	ErrorTypeConfig ErrorType = "configuration"
	ErrorTypeFetch  ErrorType = "remote_fetch"
	ErrorTypeWrite  ErrorType = "remote_write"
)

// SyncError represents a structured error from sync operations. Every kind is
// terminal for the unit of work in which it occurs; there is no retry.
type SyncError struct {
	Type     ErrorType `json:"type"`
	Resource string    `json:"resource,omitempty"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a configuration error. Configuration errors abort
// the run before any remote call is made.
func NewConfigError(message string) *SyncError {
	return &SyncError{
		Type:    ErrorTypeConfig,
		Message: message,
	}
}

// NewFetchError wraps a failed listing, topics or content probe call.
func NewFetchError(resource string, cause error) *SyncError {
	return &SyncError{
		Type:     ErrorTypeFetch,
		Resource: resource,
		Message:  cause.Error(),
		Cause:    cause,
	}
}

// NewWriteError wraps a failed create or update call.
func NewWriteError(resource string, cause error) *SyncError {
	return &SyncError{
		Type:     ErrorTypeWrite,
		Resource: resource,
		Message:  cause.Error(),
		Cause:    cause,
	}
}

// IsErrorType reports whether err is a SyncError of the given type.
func IsErrorType(err error, errorType ErrorType) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Type == errorType
	}
	return false
}
