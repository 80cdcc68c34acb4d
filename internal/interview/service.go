package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/analytics"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/evaluator"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/questionbank"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/retriever"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/session"
	pkgerrors "github.com/Priyadharshini-2004-S/Interview-Agent/pkg/errors"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/metrics"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/middleware"
)

// QuestionSource yields the ordered question list for a new interview.
type QuestionSource interface {
	QuestionsForRole(role, level string, n int) []questionbank.Question
}

// Service orchestrates interviews: question selection, retrieval, answer
// evaluation, and session bookkeeping.
type Service struct {
	questions QuestionSource
	retriever retriever.Retriever
	store     session.Store
	collector *analytics.Collector
	metrics   *metrics.Metrics

	defaultQuestions int
	maxQuestions     int

	logger *slog.Logger
}

// NewService wires the interview orchestrator. collector and m may be nil
// when analytics or metrics are disabled.
func NewService(
	questions QuestionSource,
	ret retriever.Retriever,
	store session.Store,
	collector *analytics.Collector,
	m *metrics.Metrics,
	defaultQuestions, maxQuestions int,
) *Service {
	return &Service{
		questions:        questions,
		retriever:        ret,
		store:            store,
		collector:        collector,
		metrics:          m,
		defaultQuestions: defaultQuestions,
		maxQuestions:     maxQuestions,
		logger:           slog.Default().With("component", "interview-service"),
	}
}

// Start assembles a question list for the requested role and level, creates a
// session, and returns the first question.
func (s *Service) Start(ctx context.Context, req *StartRequest) (*StartResponse, error) {
	if err := ValidateStartRequest(req); err != nil {
		return nil, pkgerrors.New(pkgerrors.ErrInvalidInput, http.StatusBadRequest, err.Error())
	}

	n := req.NumQuestions
	if n == 0 {
		n = s.defaultQuestions
	}
	if n > s.maxQuestions {
		n = s.maxQuestions
	}

	questions := s.questions.QuestionsForRole(req.Role, req.Level, n)
	if len(questions) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrNoQuestions, http.StatusBadRequest,
			"no questions found for role %q", req.Role)
	}

	sess := session.New(req.Role, req.Level, questions)
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if s.metrics != nil {
		s.metrics.InterviewsStarted.Inc()
	}
	if s.collector != nil {
		s.collector.Track(analytics.InterviewEvent{
			Type:          analytics.EventInterviewStarted,
			SessionID:     sess.ID,
			Role:          req.Role,
			Level:         req.Level,
			QuestionCount: len(questions),
			Timestamp:     time.Now().UTC(),
			RequestID:     middleware.GetRequestID(ctx),
		})
	}
	s.logger.Info("interview started",
		"session_id", sess.ID,
		"role", req.Role,
		"level", req.Level,
		"questions", len(questions),
	)

	return &StartResponse{
		SessionID:      sess.ID,
		FirstQuestion:  questionOut(questions[0]),
		TotalQuestions: len(questions),
	}, nil
}

// SubmitAnswer evaluates the answer to the session's current question,
// records the result, and advances the cursor.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID string, req *AnswerRequest) (*AnswerFeedback, error) {
	if err := ValidateAnswerRequest(req); err != nil {
		return nil, pkgerrors.New(pkgerrors.ErrInvalidInput, http.StatusBadRequest, err.Error())
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, pkgerrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	current, ok := sess.CurrentQuestion()
	if !ok {
		return nil, pkgerrors.ErrInterviewComplete
	}
	if current.ID != req.QuestionID {
		return nil, pkgerrors.Newf(pkgerrors.ErrQuestionMismatch, http.StatusBadRequest,
			"expected question %d, got %d", current.ID, req.QuestionID)
	}

	start := time.Now()
	match, matched := s.retriever.BestMatch(ctx, current.Text)
	idealAnswer := ""
	matchRatio := 0.0
	if matched {
		idealAnswer = match.Answer
		matchRatio = match.Ratio
	}

	result := evaluator.Evaluate(current.Text, req.UserAnswer, idealAnswer)
	s.observe(result, matched, matchRatio, time.Since(start))

	sess.History = append(sess.History, session.AnswerRecord{
		QuestionID:     req.QuestionID,
		OverallScore:   result.OverallScore,
		ClarityScore:   result.ClarityScore,
		CoverageScore:  result.CoverageScore,
		FeedbackPoints: result.FeedbackPoints,
	})
	sess.CurrentIndex++
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("updating session: %w", err)
	}

	if s.collector != nil {
		s.collector.Track(analytics.AnswerEvent{
			Type:          analytics.EventAnswerEvaluated,
			SessionID:     sess.ID,
			QuestionID:    req.QuestionID,
			Branch:        string(result.Branch),
			OverallScore:  result.OverallScore,
			ClarityScore:  result.ClarityScore,
			CoverageScore: result.CoverageScore,
			Matched:       matched,
			MatchRatio:    matchRatio,
			LatencyMs:     time.Since(start).Milliseconds(),
			Timestamp:     time.Now().UTC(),
			RequestID:     middleware.GetRequestID(ctx),
		})
	}
	s.logger.Info("answer evaluated",
		"session_id", sess.ID,
		"question_id", req.QuestionID,
		"branch", string(result.Branch),
		"overall_score", result.OverallScore,
		"matched", matched,
	)

	feedback := &AnswerFeedback{
		OverallScore:     result.OverallScore,
		ClarityScore:     result.ClarityScore,
		CoverageScore:    result.CoverageScore,
		FeedbackPoints:   result.FeedbackPoints,
		FollowUpQuestion: result.FollowUpQuestion,
		IsLastQuestion:   sess.Completed(),
	}
	if next, ok := sess.CurrentQuestion(); ok {
		out := questionOut(next)
		feedback.NextQuestion = &out
	}
	return feedback, nil
}

// Summary aggregates the session history into an end-of-interview report.
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, pkgerrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if len(sess.History) == 0 {
		return nil, pkgerrors.ErrNoAnswersYet
	}
	return buildSummary(sess), nil
}

func (s *Service) observe(result evaluator.Result, matched bool, ratio float64, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnswersEvaluated.WithLabelValues(string(result.Branch)).Inc()
	s.metrics.OverallScore.Observe(result.OverallScore)
	s.metrics.EvaluationDuration.Observe(elapsed.Seconds())
	if matched {
		s.metrics.RetrievalRatio.Observe(ratio)
	} else {
		s.metrics.RetrievalMisses.Inc()
	}
}

func questionOut(q questionbank.Question) QuestionOut {
	return QuestionOut{
		ID:         q.ID,
		Text:       q.Text,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
