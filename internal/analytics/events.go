package analytics

import "time"

type EventType string

const (
	EventInterviewStarted EventType = "interview_started"
	EventAnswerEvaluated  EventType = "answer_evaluated"
)

// InterviewEvent is emitted when a new interview session is created.
type InterviewEvent struct {
	Type          EventType `json:"type"`
	SessionID     string    `json:"session_id"`
	Role          string    `json:"role"`
	Level         string    `json:"level"`
	QuestionCount int       `json:"question_count"`
	Timestamp     time.Time `json:"timestamp"`
	RequestID     string    `json:"request_id"`
}

// AnswerEvent is emitted for every evaluated answer.
type AnswerEvent struct {
	Type          EventType `json:"type"`
	SessionID     string    `json:"session_id"`
	QuestionID    int       `json:"question_id"`
	Branch        string    `json:"branch"`
	OverallScore  float64   `json:"overall_score"`
	ClarityScore  float64   `json:"clarity_score"`
	CoverageScore float64   `json:"coverage_score"`
	Matched       bool      `json:"matched"`
	MatchRatio    float64   `json:"match_ratio,omitempty"`
	LatencyMs     int64     `json:"latency_ms"`
	Timestamp     time.Time `json:"timestamp"`
	RequestID     string    `json:"request_id"`
}
