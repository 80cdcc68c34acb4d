package questionbank

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseQuestions reads the question list dataset from CSV. The header row is
// matched case-insensitively with surrounding whitespace trimmed; a
// "question" column is required. Rows with an empty question and rows
// duplicating an earlier question text are dropped. IDs come from an "id"
// column when present, otherwise they are assigned sequentially from 1.
func ParseQuestions(r io.Reader) ([]Question, error) {
	records, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	qCol, ok := header["question"]
	if !ok {
		return nil, fmt.Errorf("question dataset: missing required column %q", "question")
	}
	idCol, hasID := header["id"]
	roleCol, hasRole := header["role"]
	catCol, hasCat := header["category"]
	diffCol, hasDiff := header["difficulty"]

	seen := make(map[string]struct{}, len(records))
	questions := make([]Question, 0, len(records))
	nextID := 1
	for _, rec := range records {
		text := strings.TrimSpace(field(rec, qCol))
		if text == "" {
			continue
		}
		key := normalizeKey(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		q := Question{Text: text}
		if hasID {
			if id, err := strconv.Atoi(strings.TrimSpace(field(rec, idCol))); err == nil {
				q.ID = id
			}
		}
		if q.ID == 0 {
			q.ID = nextID
		}
		nextID = q.ID + 1
		if hasRole {
			q.Role = strings.TrimSpace(field(rec, roleCol))
		}
		if hasCat {
			q.Category = strings.TrimSpace(field(rec, catCol))
		}
		if hasDiff {
			q.Difficulty = strings.TrimSpace(field(rec, diffCol))
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// ParseQAPairs reads the reference corpus from CSV. Requires "question" and
// "answer" columns; rows missing either are dropped so the retriever only
// ever sees well-formed pairs.
func ParseQAPairs(r io.Reader) ([]QAPair, error) {
	records, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	qCol, qOK := header["question"]
	aCol, aOK := header["answer"]
	if !qOK || !aOK {
		return nil, fmt.Errorf("reference corpus: missing required columns %q and %q", "question", "answer")
	}
	catCol, hasCat := header["category"]
	diffCol, hasDiff := header["difficulty"]

	pairs := make([]QAPair, 0, len(records))
	for _, rec := range records {
		question := strings.TrimSpace(field(rec, qCol))
		answer := strings.TrimSpace(field(rec, aCol))
		if question == "" || answer == "" {
			continue
		}
		pair := QAPair{Question: question, Answer: answer}
		if hasCat {
			pair.Category = strings.TrimSpace(field(rec, catCol))
		}
		if hasDiff {
			pair.Difficulty = strings.TrimSpace(field(rec, diffCol))
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// LoadQuestionsFile parses the question list dataset from a CSV file on disk.
func LoadQuestionsFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening questions file %s: %w", path, err)
	}
	defer f.Close()
	return ParseQuestions(f)
}

// LoadQAPairsFile parses the reference corpus from a CSV file on disk.
func LoadQAPairsFile(path string) ([]QAPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers file %s: %w", path, err)
	}
	defer f.Close()
	return ParseQAPairs(f)
}

// readAll consumes a CSV stream and returns the data rows plus a map of
// normalised header name to column index.
func readAll(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("reading csv: empty file")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return rows[1:], header, nil
}

// normalizeKey builds the case-insensitive dedup key for a question text.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
