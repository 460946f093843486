package core

import (
	"context"
	"encoding/json"
	"time"
)

// Schema describes the shape of a structured classification result.
// Definition is a JSON Schema document; callers unmarshal the raw
// result into their own typed struct.
type Schema struct {
	Name       string
	Definition json.RawMessage
}

// Classifier turns a transcript plus an output schema into a typed
// structured result.
type Classifier interface {
	Classify(ctx context.Context, history []Turn, schema Schema, system string) (json.RawMessage, error)
}

// Chatter produces a free-form assistant reply for a transcript.
type Chatter interface {
	Chat(ctx context.Context, history []Turn, system string) (string, error)
}

// Embedder converts text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// FactStore persists long-term facts and ranks them by similarity.
// Search returns the k nearest facts, highest similarity first.
type FactStore interface {
	Add(ctx context.Context, content string, ts time.Time) (Fact, error)
	Search(ctx context.Context, query string, k int) ([]ScoredFact, error)
	ListRecent(ctx context.Context, n int) ([]Fact, error)
}

// Ticketing is the issue-tracker port.
type Ticketing interface {
	CreateTicket(ctx context.Context, req CreateTicketRequest) (Ticket, error)
	ListTeamTickets(ctx context.Context, status TicketStatus) ([]Ticket, error)
	ListUserTickets(ctx context.Context, email string) ([]Ticket, error)
}
