// internal/engine/errors.go
package engine

import (
	"context"
	"errors"
	"fmt"
)

// Common engine errors
var (
	ErrBrowserNotFound = errors.New("chrome browser not found")
	ErrTimeout         = errors.New("page load timeout")
	ErrInvalidURL      = errors.New("invalid URL")
	ErrUnknownEngine   = errors.New("unknown engine")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeTimeout       ErrorCode = "TIMEOUT"
	ErrCodeValidation    ErrorCode = "VALIDATION"
	ErrCodeBrowserLaunch ErrorCode = "BROWSER_LAUNCH"
	ErrCodeNetworkError  ErrorCode = "NETWORK_ERROR"
	ErrCodeParseError    ErrorCode = "PARSE_ERROR"
)

// EngineError wraps errors with additional context
type EngineError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *EngineError) Is(target error) bool {
	if t, ok := target.(*EngineError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewEngineError creates a new EngineError
func NewEngineError(code ErrorCode, message string, err error) *EngineError {
	return &EngineError{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *EngineError) WithDetail(key string, value interface{}) *EngineError {
	e.Details[key] = value
	return e
}

// FetchError classifies a failure raised while loading a page. Deadline
// errors become TIMEOUT, everything else keeps the fallback code.
func FetchError(fallback ErrorCode, message string, err error) *EngineError {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewEngineError(ErrCodeTimeout, message, fmt.Errorf("%w: %v", ErrTimeout, err))
	}
	return NewEngineError(fallback, message, err)
}

// CodeOf returns the code of the first EngineError in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return "", false
}
