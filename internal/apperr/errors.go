// Package apperr defines the error taxonomy shared across the core:
// NotFound for absent entity references, InvalidArgument for malformed
// input, and InvariantViolation for internal bugs that should never be
// reachable from valid API usage.
package apperr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	TypeNotFound           ErrorType = "NOT_FOUND"
	TypeInvalidArgument    ErrorType = "INVALID_ARGUMENT"
	TypeInvariantViolation ErrorType = "INVARIANT_VIOLATION"
)

// DomainError is a typed error carrying the taxonomy type and, for internal
// violations, a captured stack
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NotFound reports an absent entity reference, e.g. NotFound("candidate", "C999")
func NotFound(entity, id string) *DomainError {
	return &DomainError{
		Type:    TypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", entity, id),
	}
}

// InvalidArgument reports malformed caller input
func InvalidArgument(format string, args ...any) *DomainError {
	return &DomainError{
		Type:    TypeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// Invariant reports a broken internal invariant. The stack is captured so
// the bug can be located from a log line alone.
func Invariant(format string, args ...any) *DomainError {
	return &DomainError{
		Type:    TypeInvariantViolation,
		Message: fmt.Sprintf(format, args...),
		Stack:   goerrors.New(fmt.Sprintf(format, args...)).Stack(),
	}
}

// IsNotFound reports whether err is a NotFound domain error
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == TypeNotFound
}

// IsInvalidArgument reports whether err is an InvalidArgument domain error
func IsInvalidArgument(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == TypeInvalidArgument
}
