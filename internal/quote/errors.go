package quote

import (
	"errors"
	"fmt"
	"net/http"

	"travelquote/internal/bundling"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_FAILED"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeUnavailable     ErrorCode = "UNAVAILABLE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

var (
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrSuggestionNotFound = bundling.ErrSuggestionNotFound
	ErrHistoryDisabled    = errors.New("score history is not configured")
)

// AppError is an error with the HTTP status and code it is rendered with.
type AppError struct {
	Status  int       `json:"-"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"error"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func validationError(format string, args ...any) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// asAppError maps service sentinels to their HTTP form. Unknown errors
// return nil.
func asAppError(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrWorkspaceNotFound):
		return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: "workspace not found", Err: err}
	case errors.Is(err, ErrSuggestionNotFound):
		return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: "suggestion not found", Err: err}
	case errors.Is(err, ErrHistoryDisabled):
		return &AppError{Status: http.StatusServiceUnavailable, Code: ErrorCodeUnavailable, Message: "score history is not configured", Err: err}
	default:
		return nil
	}
}
