package orchestrator

import (
	"errors"
	"fmt"
)

// ErrorCode classifies orchestrator failures so transport layers can map
// them to status codes without string matching.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeNotFound   ErrorCode = "not_found"
	CodeState      ErrorCode = "state"
	CodeInternal   ErrorCode = "internal"
)

// Error carries the failing operation and classification alongside the cause.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, op, message string, err error) *Error {
	return &Error{Code: code, Op: op, Message: message, Err: err}
}

func isCode(err error, code ErrorCode) bool {
	var e *Error

	return errors.As(err, &e) && e.Code == code
}

// IsValidationError reports whether err is an input-contract violation.
func IsValidationError(err error) bool {
	return isCode(err, CodeValidation)
}

// IsNotFoundError reports whether err refers to an unknown session or pathway.
func IsNotFoundError(err error) bool {
	return isCode(err, CodeNotFound)
}

// IsStateError reports whether err is a rejected mutation of a session whose
// status forbids it.
func IsStateError(err error) bool {
	return isCode(err, CodeState)
}
