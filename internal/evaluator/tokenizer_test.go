package evaluator

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \t\n ",
			want: []string{},
		},
		{
			name: "lowercases and drops stopwords",
			text: "A linked list is a data structure with nodes and pointers",
			want: []string{"linked", "list", "data", "structure", "nodes", "pointers"},
		},
		{
			name: "digits and punctuation separate tokens",
			text: "http2 uses tcp/ip, right?",
			want: []string{"http", "uses", "tcp", "ip", "right"},
		},
		{
			name: "duplicates preserved in order",
			text: "cache cache invalidation cache",
			want: []string{"cache", "cache", "invalidation", "cache"},
		},
		{
			name: "only stopwords",
			text: "the of and to in",
			want: []string{},
		},
		{
			name: "mixed case",
			text: "REST APIs use HTTP verbs",
			want: []string{"rest", "apis", "use", "http", "verbs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	inputs := []string{
		"A linked list is a data structure with nodes and pointers",
		"Explain the CAP theorem in distributed systems!",
		"what is garbage-collection (GC)? it frees memory.",
	}
	for _, text := range inputs {
		first := Tokenize(text)
		second := Tokenize(strings.Join(first, " "))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize not idempotent for %q: %v vs %v", text, first, second)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := strings.Repeat("A hash table maps keys to buckets using a hash function for constant time lookup. ", 20)
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_ = Tokenize(text)
	}
}
