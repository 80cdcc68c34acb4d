package questionbank

import (
	"context"
	"fmt"

	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/postgres"
)

// LoadQuestionsPostgres reads the question list from the interview_questions
// table. Deduplication and empty-row filtering match the CSV path.
func LoadQuestionsPostgres(ctx context.Context, db *postgres.Client) ([]Question, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT id, question, COALESCE(role, ''), COALESCE(category, ''), COALESCE(difficulty, '')
		 FROM interview_questions
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying interview_questions: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Role, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning interview_questions row: %w", err)
		}
		if q.Text == "" {
			continue
		}
		key := normalizeKey(q.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interview_questions: %w", err)
	}
	return questions, nil
}

// LoadQAPairsPostgres reads the reference corpus from the reference_answers
// table, dropping rows missing a question or answer.
func LoadQAPairsPostgres(ctx context.Context, db *postgres.Client) ([]QAPair, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT question, answer, COALESCE(category, ''), COALESCE(difficulty, '')
		 FROM reference_answers`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying reference_answers: %w", err)
	}
	defer rows.Close()

	var pairs []QAPair
	for rows.Next() {
		var p QAPair
		if err := rows.Scan(&p.Question, &p.Answer, &p.Category, &p.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning reference_answers row: %w", err)
		}
		if p.Question == "" || p.Answer == "" {
			continue
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference_answers: %w", err)
	}
	return pairs, nil
}
