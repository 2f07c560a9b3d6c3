package errors

import "fmt"

// ErrorCode represents a palwatch error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrMalformedState ErrorCode = "MALFORMED_STATE" // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// WatchError represents a structured error with code, status, and details.
type WatchError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *WatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *WatchError {
	return &WatchError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing snapshot or state file.
func NewNotFound(path string) *WatchError {
	return &WatchError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewMalformedState creates a 422 error for raw world state or snapshot
// files that cannot be decoded.
func NewMalformedState(path string, err error) *WatchError {
	msg := fmt.Sprintf("could not decode world state: %s", path)
	if err != nil {
		msg = fmt.Sprintf("could not decode world state %s: %v", path, err)
	}
	return &WatchError{
		Code:    ErrMalformedState,
		Status:  422,
		Message: msg,
		Details: map[string]any{"path": path},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *WatchError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &WatchError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a WatchError with the given code.
func Is(err error, code ErrorCode) bool {
	if wErr, ok := err.(*WatchError); ok {
		return wErr.Code == code
	}
	return false
}
