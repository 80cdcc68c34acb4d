package questionbank

import (
	"math/rand"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{ID: 1, Text: "What is OOP?", Role: "software engineer", Difficulty: "easy"},
		{ID: 2, Text: "Explain REST APIs", Role: "backend engineer", Difficulty: "medium"},
		{ID: 3, Text: "What is a deadlock?", Role: "backend engineer", Difficulty: "hard"},
		{ID: 4, Text: "What is a linked list?", Role: "software engineer", Difficulty: "easy"},
		{ID: 5, Text: "Explain the CAP theorem", Role: "distributed systems engineer", Difficulty: "hard"},
		{ID: 6, Text: "What is caching?", Role: "backend engineer", Difficulty: "medium"},
	}
}

func newTestBank() *Bank {
	return New(testQuestions(), rand.New(rand.NewSource(1)))
}

func difficultySet(questions []Question) map[string]bool {
	set := make(map[string]bool)
	for _, q := range questions {
		set[q.Difficulty] = true
	}
	return set
}

func TestQuestionsForRole(t *testing.T) {
	t.Run("role substring filter", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("backend", "junior", 10)
		for _, q := range got {
			if q.Role != "backend engineer" {
				t.Errorf("question %d has role %q, want backend engineer", q.ID, q.Role)
			}
		}
		// junior excludes the hard deadlock question.
		if len(got) != 2 {
			t.Errorf("got %d questions, want 2", len(got))
		}
	})

	t.Run("unknown role falls back to all", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("astronaut", "junior", 10)
		if len(got) == 0 {
			t.Fatal("expected fallback to the whole bank")
		}
		set := difficultySet(got)
		if set["hard"] {
			t.Errorf("junior selection includes hard questions: %+v", got)
		}
	})

	t.Run("fresher only easy", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("software", "fresher", 10)
		for _, q := range got {
			if q.Difficulty != "easy" {
				t.Errorf("fresher got %q question %d", q.Difficulty, q.ID)
			}
		}
	})

	t.Run("senior gets medium and hard", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("backend", "senior", 10)
		set := difficultySet(got)
		if set["easy"] {
			t.Errorf("senior selection includes easy questions: %+v", got)
		}
	})

	t.Run("unknown level uses junior mix", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("backend", "principal", 10)
		set := difficultySet(got)
		if set["hard"] {
			t.Errorf("unknown level should fall back to junior, got %+v", got)
		}
	})

	t.Run("difficulty fallback when filter empties", func(t *testing.T) {
		bank := New([]Question{
			{ID: 1, Text: "q1", Role: "devops", Difficulty: "hard"},
			{ID: 2, Text: "q2", Role: "devops", Difficulty: "hard"},
		}, rand.New(rand.NewSource(1)))
		got := bank.QuestionsForRole("devops", "fresher", 5)
		if len(got) != 2 {
			t.Errorf("got %d questions, want fallback to the role slice", len(got))
		}
	})

	t.Run("n caps the selection", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("", "junior", 2)
		if len(got) != 2 {
			t.Errorf("got %d questions, want 2", len(got))
		}
	})

	t.Run("non-positive n", func(t *testing.T) {
		if got := newTestBank().QuestionsForRole("backend", "junior", 0); got != nil {
			t.Errorf("got %+v, want nil for n=0", got)
		}
	})

	t.Run("no duplicate ids in a selection", func(t *testing.T) {
		got := newTestBank().QuestionsForRole("", "senior", 10)
		seen := make(map[int]bool)
		for _, q := range got {
			if seen[q.ID] {
				t.Errorf("question %d selected twice", q.ID)
			}
			seen[q.ID] = true
		}
	})
}

func TestSamplingVariesAcrossSeeds(t *testing.T) {
	questions := testQuestions()
	a := New(questions, rand.New(rand.NewSource(1))).QuestionsForRole("", "senior", 2)
	b := New(questions, rand.New(rand.NewSource(2))).QuestionsForRole("", "senior", 2)

	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i].ID != b[i].ID {
				same = false
				break
			}
		}
	}
	if same {
		c := New(questions, rand.New(rand.NewSource(3))).QuestionsForRole("", "senior", 2)
		if len(c) == len(a) && c[0].ID == a[0].ID && c[1].ID == a[1].ID {
			t.Error("three different seeds produced identical selections")
		}
	}
}

func TestSize(t *testing.T) {
	if got := newTestBank().Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
}
