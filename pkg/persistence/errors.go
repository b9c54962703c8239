// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrSessionNotFound indicates a session was not found by the given identifier.
	ErrSessionNotFound = errors.New("session not found")

	// ErrScoringImmutable indicates an attempt to overwrite an existing scoring record.
	ErrScoringImmutable = errors.New("priority scoring records are immutable")

	// ErrInvalidSessionStatus indicates a status filter naming no known session status.
	ErrInvalidSessionStatus = errors.New("invalid session status")
)

// SessionError wraps session-related errors with additional context.
type SessionError struct {
	Op        string // Operation being performed (e.g., "GetByID", "Save", "Delete")
	SessionID string // Session ID if applicable
	Err       error  // Underlying error
	Message   string // Additional context message
}

func (e *SessionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s operation failed for session %s: %s (%v)", e.Op, e.SessionID, e.Message, e.Err)
	}

	return fmt.Sprintf("%s operation failed for session %s: %v", e.Op, e.SessionID, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for session errors.
func (e *SessionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewSessionError creates a new session error with context.
func NewSessionError(op, sessionID string, err error) *SessionError {
	return &SessionError{
		Op:        op,
		SessionID: sessionID,
		Err:       err,
	}
}

// IsSessionNotFound checks if an error indicates a session was not found.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// IsScoringImmutable checks if an error indicates a scoring overwrite attempt.
func IsScoringImmutable(err error) bool {
	return errors.Is(err, ErrScoringImmutable)
}

// IsInvalidSessionStatus checks if an error indicates an unknown status filter.
func IsInvalidSessionStatus(err error) bool {
	return errors.Is(err, ErrInvalidSessionStatus)
}
