package contract

import (
	"errors"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// ErrorCode classifies failures shown to the user.
type ErrorCode string

const (
	ErrInvalidSemester     ErrorCode = "INVALID_SEMESTER"
	ErrInvalidCategory     ErrorCode = "INVALID_CATEGORY"
	ErrInvalidInput        ErrorCode = "INVALID_INPUT"
	ErrUnknownCareer       ErrorCode = "UNKNOWN_CAREER"
	ErrUnknownModule       ErrorCode = "UNKNOWN_MODULE"
	ErrUnknownMilestone    ErrorCode = "UNKNOWN_MILESTONE"
	ErrUnknownNotification ErrorCode = "UNKNOWN_NOTIFICATION"
	ErrNotFound            ErrorCode = "NOT_FOUND"
	ErrPersistence         ErrorCode = "PERSISTENCE_FAILED"
)

// Error is a presentation-facing failure with a stable code. It unwraps to
// the underlying cause when there is one.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error without a cause.
func NewError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches code to err. Wrapping an existing *Error keeps its code.
// notFound is the code used when err is domain.ErrNotFound.
func Wrap(err error, notFound ErrorCode) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if notFound == "" {
			notFound = ErrNotFound
		}
		return &Error{Code: notFound, Message: err.Error(), Err: err}
	case errors.Is(err, domain.ErrValidation):
		return &Error{Code: ErrInvalidInput, Message: err.Error(), Err: err}
	default:
		return &Error{Code: ErrPersistence, Message: err.Error(), Err: err}
	}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}
