package questionbank

import (
	"strings"
	"testing"
)

func TestParseQuestions(t *testing.T) {
	t.Run("basic parse", func(t *testing.T) {
		in := "question,role,category,difficulty\n" +
			"What is OOP?,software engineer,Programming,easy\n" +
			"Explain REST APIs,backend engineer,Web,medium\n"
		got, err := ParseQuestions(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQuestions: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("parsed %d questions, want 2", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("ids = %d, %d, want sequential from 1", got[0].ID, got[1].ID)
		}
		if got[1].Role != "backend engineer" || got[1].Difficulty != "medium" {
			t.Errorf("second question = %+v", got[1])
		}
	})

	t.Run("headers normalised", func(t *testing.T) {
		in := " Question , ROLE ,Difficulty\nWhat is OOP?,swe,easy\n"
		got, err := ParseQuestions(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQuestions: %v", err)
		}
		if len(got) != 1 || got[0].Role != "swe" || got[0].Difficulty != "easy" {
			t.Errorf("got %+v, want role and difficulty despite messy headers", got)
		}
	})

	t.Run("duplicates dropped case-insensitively", func(t *testing.T) {
		in := "question\nWhat is OOP?\nwhat is oop?\n  What is OOP?  \nExplain REST APIs\n"
		got, err := ParseQuestions(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQuestions: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("parsed %d questions, want 2 after dedup", len(got))
		}
		if got[1].Text != "Explain REST APIs" || got[1].ID != 2 {
			t.Errorf("second question = %+v", got[1])
		}
	})

	t.Run("blank rows skipped", func(t *testing.T) {
		in := "question,role\n,ignored\n   ,ignored\nWhat is OOP?,swe\n"
		got, err := ParseQuestions(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQuestions: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("parsed %d questions, want 1", len(got))
		}
	})

	t.Run("explicit ids respected", func(t *testing.T) {
		in := "id,question\n10,What is OOP?\n,Explain REST APIs\n"
		got, err := ParseQuestions(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQuestions: %v", err)
		}
		if got[0].ID != 10 {
			t.Errorf("first id = %d, want 10", got[0].ID)
		}
		if got[1].ID != 11 {
			t.Errorf("second id = %d, want 11 continuing after explicit id", got[1].ID)
		}
	})

	t.Run("missing question column", func(t *testing.T) {
		if _, err := ParseQuestions(strings.NewReader("text,role\nfoo,bar\n")); err == nil {
			t.Error("expected error for missing question column")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		if _, err := ParseQuestions(strings.NewReader("")); err == nil {
			t.Error("expected error for empty file")
		}
	})
}

func TestParseQAPairs(t *testing.T) {
	t.Run("basic parse", func(t *testing.T) {
		in := "question,answer,category,difficulty\n" +
			"What is caching?,\"Caching stores copies of results, closer to the consumer.\",Distributed Systems,hard\n"
		got, err := ParseQAPairs(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQAPairs: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("parsed %d pairs, want 1", len(got))
		}
		p := got[0]
		if p.Question != "What is caching?" || p.Category != "Distributed Systems" || p.Difficulty != "hard" {
			t.Errorf("pair = %+v", p)
		}
		if !strings.Contains(p.Answer, "closer to the consumer") {
			t.Errorf("quoted answer lost a comma: %q", p.Answer)
		}
	})

	t.Run("incomplete rows dropped", func(t *testing.T) {
		in := "question,answer\nWhat is caching?,\n,orphan answer\nWhat is Docker?,containers\n"
		got, err := ParseQAPairs(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseQAPairs: %v", err)
		}
		if len(got) != 1 || got[0].Question != "What is Docker?" {
			t.Errorf("got %+v, want only the complete row", got)
		}
	})

	t.Run("missing answer column", func(t *testing.T) {
		if _, err := ParseQAPairs(strings.NewReader("question\nWhat is caching?\n")); err == nil {
			t.Error("expected error for missing answer column")
		}
	})
}

func TestLoadQuestionsFileMissing(t *testing.T) {
	if _, err := LoadQuestionsFile("does/not/exist.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
