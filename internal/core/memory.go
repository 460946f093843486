package core

import "time"

// Fact is a persisted long-term memory record about the user. Facts
// are immutable once stored; the embedding is owned by the store and
// never leaves it.
type Fact struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoredFact pairs a fact with its similarity to a query, normalized
// to [0,1], higher meaning more similar.
type ScoredFact struct {
	Fact
	Score float64 `json:"score"`
}
