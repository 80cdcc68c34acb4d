package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", ErrSessionNotFound, http.StatusNotFound},
		{"question mismatch", ErrQuestionMismatch, http.StatusBadRequest},
		{"interview complete", ErrInterviewComplete, http.StatusBadRequest},
		{"no answers yet", ErrNoAnswersYet, http.StatusBadRequest},
		{"no questions", ErrNoQuestions, http.StatusBadRequest},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("loading session: %w", ErrSessionNotFound), http.StatusNotFound},
		{"app error status wins", New(ErrInvalidInput, http.StatusUnprocessableEntity, "bad"), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := Newf(ErrQuestionMismatch, http.StatusBadRequest, "expected question %d, got %d", 1, 2)
	if !errors.Is(err, ErrQuestionMismatch) {
		t.Error("AppError does not unwrap to its sentinel")
	}
	want := "question id does not match current question: expected question 1, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
