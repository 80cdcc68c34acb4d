// Package retriever locates the reference answer whose corpus question best
// matches a given question text. Matching is a lexical similarity scan over
// raw lowercased strings; keyword-level overlap is the evaluator's job, not
// this package's.
package retriever

import (
	"context"
	"strings"

	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/questionbank"
)

// DefaultMinRatio is the floor below which a best match is treated as "no
// reliable reference answer exists".
const DefaultMinRatio = 0.30

// Match is a retrieved reference answer and the similarity that selected it.
type Match struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Ratio    float64 `json:"ratio"`
}

// Retriever finds the reference answer best matching a question text. The
// boolean is false when nothing clears the similarity floor.
type Retriever interface {
	BestMatch(ctx context.Context, questionText string) (*Match, bool)
}

// Lexical is a brute-force O(corpus size) scanner. Acceptable for corpora of
// hundreds of entries; anything larger should hide an index behind the
// Retriever interface instead.
type Lexical struct {
	corpus   []questionbank.QAPair
	minRatio float64
}

// NewLexical creates a Lexical retriever over the given corpus. The corpus is
// treated as immutable; minRatio values outside (0,1] fall back to
// DefaultMinRatio.
func NewLexical(corpus []questionbank.QAPair, minRatio float64) *Lexical {
	if minRatio <= 0 || minRatio > 1 {
		minRatio = DefaultMinRatio
	}
	return &Lexical{corpus: corpus, minRatio: minRatio}
}

// BestMatch scans every corpus question and returns the highest-ratio pair.
// Ties resolve to the first entry in corpus order. Entries missing a question
// or answer are skipped.
func (l *Lexical) BestMatch(_ context.Context, questionText string) (*Match, bool) {
	query := []rune(strings.ToLower(questionText))

	bestRatio := 0.0
	var best *Match
	for i := range l.corpus {
		pair := &l.corpus[i]
		if pair.Question == "" || pair.Answer == "" {
			continue
		}
		ratio := sequenceRatio(query, []rune(strings.ToLower(pair.Question)))
		if ratio > bestRatio {
			bestRatio = ratio
			best = &Match{Question: pair.Question, Answer: pair.Answer, Ratio: ratio}
		}
	}

	if best == nil || bestRatio < l.minRatio {
		return nil, false
	}
	return best, true
}
