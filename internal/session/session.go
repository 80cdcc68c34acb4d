// Package session holds live interview state and the pluggable Store it is
// kept in. A session exists only for the lifetime of an interview; there is
// no durability guarantee beyond that.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/questionbank"
)

// AnswerRecord is the per-answer history entry derived from an evaluation.
type AnswerRecord struct {
	QuestionID     int      `json:"question_id"`
	OverallScore   float64  `json:"overall_score"`
	ClarityScore   float64  `json:"clarity_score"`
	CoverageScore  float64  `json:"coverage_score"`
	FeedbackPoints []string `json:"feedback_points"`
}

// Session is one interview in progress: the assigned questions, a cursor into
// them, and the history of evaluated answers.
type Session struct {
	ID           string                  `json:"id"`
	Role         string                  `json:"role"`
	Level        string                  `json:"level"`
	Questions    []questionbank.Question `json:"questions"`
	CurrentIndex int                     `json:"current_index"`
	History      []AnswerRecord          `json:"history"`
	CreatedAt    time.Time               `json:"created_at"`
}

// New creates a Session with a fresh UUID and the cursor at the first
// question.
func New(role, level string, questions []questionbank.Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Role:      role,
		Level:     level,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
}

// Completed reports whether every assigned question has been answered.
func (s *Session) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// CurrentQuestion returns the question at the cursor, or false when the
// interview is complete.
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	if s.Completed() {
		return questionbank.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Clone returns a deep copy so store callers never share mutable state.
func (s *Session) Clone() *Session {
	c := *s
	c.Questions = make([]questionbank.Question, len(s.Questions))
	copy(c.Questions, s.Questions)
	c.History = make([]AnswerRecord, len(s.History))
	for i, rec := range s.History {
		points := make([]string, len(rec.FeedbackPoints))
		copy(points, rec.FeedbackPoints)
		rec.FeedbackPoints = points
		c.History[i] = rec
	}
	return &c
}
