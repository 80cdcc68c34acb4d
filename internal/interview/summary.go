package interview

import (
	"math"
	"strings"

	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/session"
)

// buildSummary condenses the answer history into an average score with
// strength and improvement notes. The notes are keyword scans over the
// accumulated feedback, not free-form generation.
func buildSummary(sess *session.Session) *Summary {
	var sum float64
	for _, rec := range sess.History {
		sum += rec.OverallScore
	}
	avg := math.Round(sum/float64(len(sess.History))*100) / 100

	var strengths, improvements []string
	switch {
	case avg >= 4:
		strengths = append(strengths, "Overall strong technical explanations and clarity.")
	case avg >= 3:
		strengths = append(strengths, "You have a reasonable understanding of the topics.")
	default:
		improvements = append(improvements, "Revise core technical concepts and practice structuring your answers.")
	}

	allFeedback := feedbackText(sess.History)
	if strings.Contains(allFeedback, "structure") {
		improvements = append(improvements, "Work on structuring answers (Intro → Concept → Example → Summary).")
	}
	if strings.Contains(allFeedback, "examples") {
		improvements = append(improvements, "Add real-world examples in your answers.")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "You are taking the right step by practicing interviews. Keep going!")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Fine-tune your explanations and practice more mock interviews.")
	}

	return &Summary{
		SessionID:      sess.ID,
		Role:           sess.Role,
		TotalQuestions: len(sess.Questions),
		Answered:       len(sess.History),
		AvgScore:       avg,
		Strengths:      strengths,
		Improvements:   improvements,
	}
}

func feedbackText(history []session.AnswerRecord) string {
	var b strings.Builder
	for _, rec := range history {
		for _, point := range rec.FeedbackPoints {
			b.WriteString(point)
			b.WriteByte(' ')
		}
	}
	return strings.ToLower(b.String())
}
