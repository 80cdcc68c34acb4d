package interview

import (
	"fmt"
	"strings"
)

const (
	maxRoleLength   = 128
	maxLevelLength  = 32
	maxAnswerLength = 32768
)

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s:%s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// ValidateStartRequest checks the start-interview payload. num_questions of
// zero means "use the default"; negatives are rejected.
func ValidateStartRequest(req *StartRequest) error {
	errs := make(map[string]string)

	role := strings.TrimSpace(req.Role)
	if role == "" {
		errs["role"] = "role is required"
	} else if len(role) > maxRoleLength {
		errs["role"] = fmt.Sprintf("role must be at most %d characters", maxRoleLength)
	}
	if len(req.Level) > maxLevelLength {
		errs["level"] = fmt.Sprintf("level must be at most %d characters", maxLevelLength)
	}
	if req.NumQuestions < 0 {
		errs["num_questions"] = "num_questions must not be negative"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ValidateAnswerRequest checks the submit-answer payload. An empty answer is
// allowed; the evaluator handles it as its own branch.
func ValidateAnswerRequest(req *AnswerRequest) error {
	errs := make(map[string]string)

	if req.QuestionID < 1 {
		errs["question_id"] = "question_id is required"
	}
	if len(req.UserAnswer) > maxAnswerLength {
		errs["user_answer"] = fmt.Sprintf("user_answer must be at most %d characters", maxAnswerLength)
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
