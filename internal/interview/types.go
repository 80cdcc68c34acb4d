// Package interview is the host layer around the evaluation core: request
// validation, session orchestration, and the HTTP surface.
package interview

// StartRequest is the JSON body accepted when starting an interview.
type StartRequest struct {
	Role         string `json:"role"`
	Level        string `json:"level"`
	NumQuestions int    `json:"num_questions"`
}

// QuestionOut is a question as presented to the candidate.
type QuestionOut struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// StartResponse is returned after a session is created.
type StartResponse struct {
	SessionID      string      `json:"session_id"`
	FirstQuestion  QuestionOut `json:"first_question"`
	TotalQuestions int         `json:"total_questions"`
}

// AnswerRequest is the JSON body for a submitted answer.
type AnswerRequest struct {
	QuestionID int    `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// AnswerFeedback is the per-answer evaluation returned to the candidate.
type AnswerFeedback struct {
	OverallScore     float64      `json:"overall_score"`
	ClarityScore     float64      `json:"clarity_score"`
	CoverageScore    float64      `json:"coverage_score"`
	FeedbackPoints   []string     `json:"feedback_points"`
	FollowUpQuestion string       `json:"follow_up_question,omitempty"`
	IsLastQuestion   bool         `json:"is_last_question"`
	NextQuestion     *QuestionOut `json:"next_question,omitempty"`
}

// Summary is the end-of-session report.
type Summary struct {
	SessionID      string   `json:"session_id"`
	Role           string   `json:"role"`
	TotalQuestions int      `json:"total_questions"`
	Answered       int      `json:"answered"`
	AvgScore       float64  `json:"avg_score"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
}
