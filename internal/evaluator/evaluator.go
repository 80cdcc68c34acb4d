// Package evaluator implements the answer evaluation core: tokenization,
// keyword-coverage scoring, length-based clarity scoring, score blending, and
// feedback generation. All functions are pure and deterministic; given
// identical inputs the output is bit-identical.
package evaluator

import (
	"math"
	"sort"
	"strings"
)

// Branch identifies which evaluation path produced a Result.
type Branch string

const (
	BranchNoAnswer    Branch = "no_answer"
	BranchNoReference Branch = "no_reference"
	BranchFull        Branch = "full"
)

// Result is the structured outcome of evaluating a single answer.
// CoverageScore and ClarityScore are integers in [1,5] represented as floats;
// OverallScore is a float in [1.0,5.0].
type Result struct {
	OverallScore     float64  `json:"overall_score"`
	ClarityScore     float64  `json:"clarity_score"`
	CoverageScore    float64  `json:"coverage_score"`
	FeedbackPoints   []string `json:"feedback_points"`
	FollowUpQuestion string   `json:"follow_up_question,omitempty"`
	Branch           Branch   `json:"-"`
}

// coverageBands maps a minimum coverage ratio to a discrete score. Scanned in
// order, first match wins.
var coverageBands = []struct {
	minRatio float64
	score    int
}{
	{0.75, 5},
	{0.55, 4},
	{0.35, 3},
	{0.18, 2},
	{0.0, 1},
}

// clarityBands maps a minimum raw word count to a discrete score.
var clarityBands = []struct {
	minWords int
	score    int
}{
	{80, 5},
	{50, 4},
	{25, 3},
	{10, 2},
	{0, 1},
}

// Weights for blending coverage and clarity into the overall score.
// Correctness matters more than verbosity.
const (
	coverageWeight = 0.7
	clarityWeight  = 0.3
)

// Evaluate scores a user answer against the reference answer for a question.
// idealAnswer may be empty when no reference exists; the question text itself
// does not influence scoring but is part of the evaluation contract.
//
// Three branches, first match wins:
//  1. empty (after trimming) user answer: fixed minimal result;
//  2. no reference keywords: clarity-only scoring with a neutral coverage
//     score reported for display;
//  3. full scoring: keyword coverage blended with length-based clarity.
func Evaluate(question, userAnswer, idealAnswer string) Result {
	userAnswer = strings.TrimSpace(userAnswer)
	if userAnswer == "" {
		return noAnswerResult()
	}

	userTokens := Tokenize(userAnswer)
	idealTokens := Tokenize(idealAnswer)
	if len(idealTokens) == 0 {
		return noReferenceResult(userAnswer)
	}

	idealSet := tokenSet(idealTokens)
	userSet := tokenSet(userTokens)

	common := make([]string, 0, len(idealSet))
	missing := make([]string, 0, len(idealSet))
	for token := range idealSet {
		if _, ok := userSet[token]; ok {
			common = append(common, token)
		} else {
			missing = append(missing, token)
		}
	}
	sort.Strings(common)
	sort.Strings(missing)

	coverageRatio := float64(len(common)) / float64(len(idealSet))
	coverageScore := coverageScoreFromRatio(coverageRatio)
	clarityScore := clarityScoreFromLength(wordCount(userAnswer))
	overall := round2(coverageWeight*float64(coverageScore) + clarityWeight*float64(clarityScore))

	points := make([]string, 0, 3)
	points = append(points, coverageFeedback(coverageScore))
	points = append(points, clarityFeedback(clarityScore))
	if len(common) > 0 {
		points = append(points, matchedKeywordsFeedback(common))
	}

	return Result{
		OverallScore:     overall,
		ClarityScore:     float64(clarityScore),
		CoverageScore:    float64(coverageScore),
		FeedbackPoints:   points,
		FollowUpQuestion: followUpFromMissing(missing),
		Branch:           BranchFull,
	}
}

// noAnswerResult is the fixed short-circuit for empty answers. No
// tokenization occurs.
func noAnswerResult() Result {
	return Result{
		OverallScore:  1.0,
		ClarityScore:  1.0,
		CoverageScore: 1.0,
		FeedbackPoints: []string{
			noAnswerAttemptMsg,
			noAnswerDefineMsg,
		},
		FollowUpQuestion: noAnswerFollowUp,
		Branch:           BranchNoAnswer,
	}
}

// noReferenceResult scores on clarity alone. The 3.0 coverage score is a
// neutral display value and is deliberately excluded from the overall blend.
func noReferenceResult(userAnswer string) Result {
	clarityScore := clarityScoreFromLength(wordCount(userAnswer))

	points := []string{noReferenceMsg}
	if clarityScore <= 2 {
		points = append(points, noReferenceMoreDetailMsg)
	} else {
		points = append(points, noReferenceOkLengthMsg)
	}

	return Result{
		OverallScore:   float64(clarityScore),
		ClarityScore:   float64(clarityScore),
		CoverageScore:  3.0,
		FeedbackPoints: points,
		Branch:         BranchNoReference,
	}
}

func coverageScoreFromRatio(ratio float64) int {
	for _, band := range coverageBands {
		if ratio >= band.minRatio {
			return band.score
		}
	}
	return 1
}

func clarityScoreFromLength(words int) int {
	for _, band := range clarityBands {
		if words >= band.minWords {
			return band.score
		}
	}
	return 1
}

// wordCount counts whitespace-separated words of the raw answer, without
// stop-word filtering.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
