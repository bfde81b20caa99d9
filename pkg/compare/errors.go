package compare

import "fmt"

// Error codes returned by the engine. Only configuration problems are
// exceptional; missing data and zero denominators never produce errors.
const (
	// CodeInvalidConfig indicates an operation was called with an invalid
	// configuration (empty key name, non-positive window, and so on).
	CodeInvalidConfig = "INVALID_CONFIG"
)

// Error is a structured engine error carrying a stable machine-readable
// code alongside the human-readable message.
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

// Is matches errors by code so callers can test against sentinel values
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// ErrInvalidConfig is the sentinel for configuration validation failures.
var ErrInvalidConfig = &Error{Code: CodeInvalidConfig, Message: "invalid configuration"}

// NewInvalidConfig creates an invalid-configuration error with details.
func NewInvalidConfig(message string, details interface{}) *Error {
	return &Error{
		Code:    CodeInvalidConfig,
		Message: message,
		Details: details,
	}
}
