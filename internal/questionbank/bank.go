package questionbank

import (
	"math/rand"
	"strings"
	"sync"
)

// levelDifficulties maps an experience level to the difficulties it should be
// asked. Unknown levels fall back to the junior mix.
var levelDifficulties = map[string][]string{
	"fresher": {"easy"},
	"junior":  {"easy", "medium"},
	"senior":  {"medium", "hard"},
}

// Bank selects interview questions from the loaded question list. The list is
// immutable; only the sampling source is guarded, since rand.Rand is not safe
// for concurrent use.
type Bank struct {
	questions []Question

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Bank over the given questions. rng drives sampling and is
// injected so tests can seed it.
func New(questions []Question, rng *rand.Rand) *Bank {
	return &Bank{questions: questions, rng: rng}
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.questions)
}

// QuestionsForRole returns up to n questions for the given role and level.
//
// Role matching is a case-insensitive substring match, falling back to the
// whole list when no role matches. The level then narrows by difficulty,
// again falling back to the role slice when the filter empties it. The final
// selection is a uniform random sample, so repeated interviews differ.
func (b *Bank) QuestionsForRole(role, level string, n int) []Question {
	if n < 1 {
		return nil
	}

	byRole := b.filterByRole(role)
	if len(byRole) == 0 {
		byRole = b.questions
	}

	byLevel := filterByDifficulty(byRole, difficultiesForLevel(level))
	if len(byLevel) == 0 {
		byLevel = byRole
	}

	return b.sample(byLevel, n)
}

func (b *Bank) filterByRole(role string) []Question {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return nil
	}
	matched := make([]Question, 0, len(b.questions))
	for _, q := range b.questions {
		if strings.Contains(strings.ToLower(q.Role), role) {
			matched = append(matched, q)
		}
	}
	return matched
}

func filterByDifficulty(questions []Question, difficulties []string) []Question {
	matched := make([]Question, 0, len(questions))
	for _, q := range questions {
		d := strings.ToLower(strings.TrimSpace(q.Difficulty))
		for _, want := range difficulties {
			if d == want {
				matched = append(matched, q)
				break
			}
		}
	}
	return matched
}

func difficultiesForLevel(level string) []string {
	if diffs, ok := levelDifficulties[strings.ToLower(strings.TrimSpace(level))]; ok {
		return diffs
	}
	return levelDifficulties["junior"]
}

// sample returns a uniform random selection of up to n questions.
func (b *Bank) sample(questions []Question, n int) []Question {
	if n > len(questions) {
		n = len(questions)
	}
	picked := make([]Question, len(questions))
	copy(picked, questions)

	b.mu.Lock()
	b.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	b.mu.Unlock()

	return picked[:n]
}
