package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can decide how to react without string matching
type Code string

const (
	// CodeUnknown indicates an error that carries no category
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a bad value
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested character or marker does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a character that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates a broken store or programming error
	CodeInternal Code = "internal"

	// CodeIllegalTransition indicates a transition invoked from the wrong source state,
	// e.g. stabilizing a character that is not dying
	CodeIllegalTransition Code = "illegal_transition"

	// CodeInvariantViolation indicates an operation whose preconditions on the character's
	// attributes do not hold, e.g. rolling a death save with hit points above zero
	CodeInvariantViolation Code = "invariant_violation"
)

// Error is an application error with a code, an optional cause and free-form metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and sets the code explicitly
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// IllegalTransitionf creates a formatted illegal transition error
func IllegalTransitionf(format string, args ...any) *Error {
	return Newf(CodeIllegalTransition, format, args...)
}

// InvariantViolationf creates a formatted invariant violation error
func InvariantViolationf(format string, args ...any) *Error {
	return Newf(CodeInvariantViolation, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsIllegalTransition checks if the error is an illegal transition error
func IsIllegalTransition(err error) bool {
	return Is(err, CodeIllegalTransition)
}

// IsInvariantViolation checks if the error is an invariant violation error
func IsInvariantViolation(err error) bool {
	return Is(err, CodeInvariantViolation)
}

// IsRecoverable reports whether the error is one the state machine resolves as a logged no-op
func IsRecoverable(err error) bool {
	return IsIllegalTransition(err) || IsInvariantViolation(err)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
