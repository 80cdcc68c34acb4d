// Package questionbank supplies the interview datasets: the question list
// used to assemble interviews and the QA reference corpus used for answer
// evaluation. Both can be loaded from CSV files or PostgreSQL; once loaded
// they are read-only for the lifetime of the process.
package questionbank

// Question is one entry from the question list dataset.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Role       string `json:"role,omitempty"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// QAPair is one entry from the reference corpus: a question together with its
// model answer.
type QAPair struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}
