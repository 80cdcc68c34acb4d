package evaluator

import "strings"

// stopWords are excluded from keyword extraction. Kept as data so the set can
// be tuned without touching control flow.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "a": {}, "an": {}, "of": {}, "and": {},
	"to": {}, "in": {}, "on": {}, "for": {}, "with": {}, "that": {},
	"this": {}, "it": {}, "as": {}, "by": {}, "at": {}, "are": {},
	"be": {}, "or": {}, "from": {},
}

// Tokenize lower-cases text and extracts maximal runs of ASCII letters,
// dropping stop-words. Digits, punctuation, and symbols act as separators and
// never appear inside a token. Order and duplicates are preserved; consumers
// that need uniqueness build their own sets.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, isStop := stopWords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// tokenSet returns the unique tokens of a token sequence.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
