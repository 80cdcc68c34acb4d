package evaluator

import (
	"reflect"
	"strings"
	"testing"
)

const linkedListIdeal = "A linked list is a data structure with nodes and pointers"

func answerOfWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestEvaluateNoAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\n\t "} {
		got := Evaluate("What is OOP?", answer, "Any ideal answer")
		if got.Branch != BranchNoAnswer {
			t.Fatalf("branch = %q, want %q", got.Branch, BranchNoAnswer)
		}
		if got.OverallScore != 1.0 || got.ClarityScore != 1.0 || got.CoverageScore != 1.0 {
			t.Errorf("scores = %v/%v/%v, want all 1.0",
				got.OverallScore, got.ClarityScore, got.CoverageScore)
		}
		if len(got.FeedbackPoints) != 2 {
			t.Errorf("feedback points = %d, want 2", len(got.FeedbackPoints))
		}
		if got.FollowUpQuestion != noAnswerFollowUp {
			t.Errorf("follow-up = %q, want fixed encouragement", got.FollowUpQuestion)
		}
	}
}

func TestEvaluateNoReference(t *testing.T) {
	tests := []struct {
		name        string
		ideal       string
		words       int
		wantClarity float64
	}{
		{"absent reference short answer", "", 5, 1},
		{"stopword-only reference", "the of and to", 30, 3},
		{"absent reference long answer", "", 60, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate("Some question", answerOfWords(tt.words), tt.ideal)
			if got.Branch != BranchNoReference {
				t.Fatalf("branch = %q, want %q", got.Branch, BranchNoReference)
			}
			if got.ClarityScore != tt.wantClarity {
				t.Errorf("clarity = %v, want %v", got.ClarityScore, tt.wantClarity)
			}
			// Overall is clarity-only; coverage is a neutral display value
			// excluded from the blend.
			if got.OverallScore != tt.wantClarity {
				t.Errorf("overall = %v, want %v", got.OverallScore, tt.wantClarity)
			}
			if got.CoverageScore != 3.0 {
				t.Errorf("coverage = %v, want neutral 3.0", got.CoverageScore)
			}
			if got.FollowUpQuestion != "" {
				t.Errorf("follow-up = %q, want none", got.FollowUpQuestion)
			}
		})
	}
}

func TestEvaluateFullBranch(t *testing.T) {
	got := Evaluate(
		"What is a linked list?",
		"Linked list has nodes and pointers",
		linkedListIdeal,
	)

	if got.Branch != BranchFull {
		t.Fatalf("branch = %q, want %q", got.Branch, BranchFull)
	}
	// ideal set {linked,list,data,structure,nodes,pointers}, 4 of 6 covered.
	if got.CoverageScore != 4 {
		t.Errorf("coverage = %v, want 4", got.CoverageScore)
	}
	// 6 raw words.
	if got.ClarityScore != 1 {
		t.Errorf("clarity = %v, want 1", got.ClarityScore)
	}
	if want := 3.1; got.OverallScore != want {
		t.Errorf("overall = %v, want %v", got.OverallScore, want)
	}

	wantFollowUp := "You did not clearly mention: data, structure. " +
		"Can you also explain how data, structure relates to this question?"
	if got.FollowUpQuestion != wantFollowUp {
		t.Errorf("follow-up = %q, want %q", got.FollowUpQuestion, wantFollowUp)
	}

	var matchedPoint string
	for _, p := range got.FeedbackPoints {
		if strings.HasPrefix(p, "Good job mentioning key terms") {
			matchedPoint = p
		}
	}
	if want := "Good job mentioning key terms like: linked, list, nodes, pointers."; matchedPoint != want {
		t.Errorf("matched-keywords point = %q, want %q", matchedPoint, want)
	}
}

func TestEvaluatePerfectCoverage(t *testing.T) {
	got := Evaluate("q", linkedListIdeal, linkedListIdeal)
	if got.CoverageScore != 5 {
		t.Errorf("coverage = %v, want 5", got.CoverageScore)
	}
	if got.FollowUpQuestion != "" {
		t.Errorf("follow-up = %q, want none when nothing is missing", got.FollowUpQuestion)
	}
}

func TestClarityThresholds(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1}, {1, 1}, {9, 1}, {10, 2}, {24, 2},
		{25, 3}, {49, 3}, {50, 4}, {79, 4}, {80, 5}, {200, 5},
	}
	for _, tt := range tests {
		if got := clarityScoreFromLength(tt.words); got != tt.want {
			t.Errorf("clarityScoreFromLength(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestCoverageThresholds(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0.0, 1}, {0.17, 1}, {0.18, 2}, {0.34, 2},
		{0.35, 3}, {0.54, 3}, {0.55, 4}, {0.74, 4},
		{0.75, 5}, {1.0, 5},
	}
	for _, tt := range tests {
		if got := coverageScoreFromRatio(tt.ratio); got != tt.want {
			t.Errorf("coverageScoreFromRatio(%v) = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestScoresMonotonic(t *testing.T) {
	prev := 0
	for ratio := 0.0; ratio <= 1.0; ratio += 0.01 {
		score := coverageScoreFromRatio(ratio)
		if score < prev {
			t.Fatalf("coverage score decreased at ratio %v: %d < %d", ratio, score, prev)
		}
		prev = score
	}

	prev = 0
	for words := 0; words <= 120; words++ {
		score := clarityScoreFromLength(words)
		if score < prev {
			t.Fatalf("clarity score decreased at %d words: %d < %d", words, score, prev)
		}
		prev = score
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	question := "Explain caching"
	answer := "Caching stores copies of expensive results for faster repeated reads"
	ideal := "Caching stores copies of expensive results closer to the consumer with invalidation strategies"

	first := Evaluate(question, answer, ideal)
	second := Evaluate(question, answer, ideal)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestFollowUpSkipsShortKeywords(t *testing.T) {
	// Missing keywords of length <= 3 are too generic to ask about.
	got := followUpFromMissing([]string{"api", "gc", "tcp"})
	if got != "" {
		t.Errorf("followUpFromMissing = %q, want empty for short keywords", got)
	}

	got = followUpFromMissing([]string{"api", "cache", "index", "queue", "shard"})
	want := "You did not clearly mention: cache, index, queue. " +
		"Can you also explain how cache, index, queue relates to this question?"
	if got != want {
		t.Errorf("followUpFromMissing = %q, want %q", got, want)
	}
}
