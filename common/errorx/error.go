package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError is an expected, recoverable-by-caller failure. It implements error.
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// GetCode returns the business error code.
func (e *BizError) GetCode() int {
	return e.Code
}

// GetMessage returns the user-visible message.
func (e *BizError) GetMessage() string {
	return e.Message
}

// New creates a business error with the code's default message.
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage creates a business error with a custom message.
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Is reports whether err is a BizError carrying the given code.
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr.Code == code
	}
	return false
}

// FromError converts any error into a BizError:
//  1. *BizError (possibly wrapped via errors.Wrap): returned as is
//  2. anything else: internal error, details hidden from the caller
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr
	}
	return New(CodeInternalError)
}

// ============ shortcuts ============

// ErrInvalidInput reports malformed or empty caller input.
func ErrInvalidInput(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidInput)
	}
	return NewWithMessage(CodeInvalidInput, msg)
}

// ErrNotFound reports a missing resource.
func ErrNotFound(msg string) *BizError {
	if msg == "" {
		return New(CodeNotFound)
	}
	return NewWithMessage(CodeNotFound, msg)
}

// ErrConflict reports a business-rule violation against current state.
func ErrConflict(msg string) *BizError {
	if msg == "" {
		return New(CodeConflict)
	}
	return NewWithMessage(CodeConflict, msg)
}

// ErrTooManyRequests reports rate limiting.
func ErrTooManyRequests() *BizError {
	return New(CodeTooManyRequests)
}

// ErrInternalError reports an unexpected failure.
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}
