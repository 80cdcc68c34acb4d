package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrQuestionMismatch  = errors.New("question id does not match current question")
	ErrInterviewComplete = errors.New("interview already completed")
	ErrNoAnswersYet      = errors.New("no answers submitted yet")
	ErrNoQuestions       = errors.New("no questions available")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
)

type AppError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, statusCode int, message string) *AppError {
	return &AppError{
		Err:        sentinel,
		Message:    message,
		StatusCode: statusCode,
	}
}

func Newf(sentinel error, statusCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:        sentinel,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrQuestionMismatch),
		errors.Is(err, ErrInterviewComplete),
		errors.Is(err, ErrNoAnswersYet),
		errors.Is(err, ErrNoQuestions),
		errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
