package retriever

import (
	"math"
	"testing"
)

func ratioOf(a, b string) float64 {
	return sequenceRatio([]rune(a), []rune(b))
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 0},
		{"one empty", "abc", "", 0},
		{"identical", "explain rest apis", "explain rest apis", 1},
		{"no overlap", "zzz", "qqq", 0},
		{"half overlap", "abcd", "bcde", 0.75},
		{"repeated block", "abcxabc", "abc", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ratioOf(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("sequenceRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSequenceRatioSymmetricLength(t *testing.T) {
	// The ratio is normalised by the combined length, so swapping the
	// arguments never changes the amount of matched text.
	pairs := [][2]string{
		{"explain rest apis", "explain rest api design"},
		{"what is a deadlock", "what is docker"},
		{"abcxabc", "abc"},
	}
	for _, p := range pairs {
		ab := ratioOf(p[0], p[1])
		ba := ratioOf(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("ratio(%q,%q)=%v but ratio(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestSequenceRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"", "anything"},
		{"a", "a"},
		{"short", "a much longer string with little in common"},
		{"explain rest apis", "explain rest api design"},
	}
	for _, p := range pairs {
		r := ratioOf(p[0], p[1])
		if r < 0 || r > 1 {
			t.Errorf("ratio(%q,%q) = %v, out of [0,1]", p[0], p[1], r)
		}
	}
}
