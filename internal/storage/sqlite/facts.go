package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
)

// FactsRepo implements core.FactStore. Embeddings are computed on
// write and on search through the injected embedder; ranking is
// brute-force cosine over the stored vectors.
type FactsRepo struct {
	db       *sql.DB
	embedder core.Embedder
}

func NewFactsRepo(db *sql.DB, embedder core.Embedder) *FactsRepo {
	return &FactsRepo{db: db, embedder: embedder}
}

func (r *FactsRepo) Add(ctx context.Context, content string, ts time.Time) (core.Fact, error) {
	vec, err := r.embedder.Embed(ctx, content)
	if err != nil {
		return core.Fact{}, fmt.Errorf("embed fact: %w", err)
	}

	blob, err := serializeVector(vec)
	if err != nil {
		return core.Fact{}, err
	}

	fact := core.Fact{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: ts,
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO facts (id, content, embedding, created_at) VALUES (?, ?, ?, ?)`,
		fact.ID, fact.Content, blob, fact.CreatedAt,
	)
	if err != nil {
		return core.Fact{}, fmt.Errorf("failed to insert fact: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("id", fact.ID).Msg("fact stored")
	return fact, nil
}

func (r *FactsRepo) Search(ctx context.Context, query string, k int) ([]core.ScoredFact, error) {
	if k <= 0 {
		return nil, nil
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, content, embedding, created_at FROM facts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts: %w", err)
	}
	defer rows.Close()

	var scored []core.ScoredFact
	for rows.Next() {
		var fact core.Fact
		var blob []byte
		if err := rows.Scan(&fact.ID, &fact.Content, &blob, &fact.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fact: %w", err)
		}

		vec, err := deserializeVector(blob)
		if err != nil {
			return nil, err
		}

		scored = append(scored, core.ScoredFact{
			Fact:  fact,
			Score: cosineSimilarity(queryVec, vec),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

func (r *FactsRepo) ListRecent(ctx context.Context, n int) ([]core.Fact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, created_at FROM facts ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts: %w", err)
	}
	defer rows.Close()

	var facts []core.Fact
	for rows.Next() {
		var fact core.Fact
		if err := rows.Scan(&fact.ID, &fact.Content, &fact.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fact: %w", err)
		}
		facts = append(facts, fact)
	}
	return facts, rows.Err()
}
