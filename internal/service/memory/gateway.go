package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
)

// Gateway implements the long-term memory policy: deduplicated writes
// and threshold-filtered reads over the fact store.
type Gateway struct {
	cfg        *config.MemoryConfig
	classifier core.Classifier
	store      core.FactStore
}

func NewGateway(cfg *config.MemoryConfig, classifier core.Classifier, store core.FactStore) *Gateway {
	return &Gateway{
		cfg:        cfg,
		classifier: classifier,
		store:      store,
	}
}

// ExtractAndSave inspects a user message for a save-worthy fact and
// persists it unless a sufficiently similar fact already exists.
// Callers run this in the background; its latency and failures never
// reach the user.
func (g *Gateway) ExtractAndSave(ctx context.Context, message string) error {
	logger := log.FromCtx(ctx)

	history := []core.Turn{core.UserTurn(message)}
	raw, err := g.classifier.Classify(ctx, history, analysisSchema, analysisSystemPrompt)
	if err != nil {
		return fmt.Errorf("memory analysis: %w", err)
	}

	var result analysis
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("decode memory analysis: %w", err)
	}

	if !result.ShouldSave || result.Content == "" {
		logger.Debug().Msg("message carries no durable fact")
		return nil
	}

	dup, err := g.isDuplicate(ctx, result.Content)
	if err != nil {
		return err
	}
	if dup {
		logger.Debug().Str("content", result.Content).Msg("similar fact already stored, skipping")
		return nil
	}

	fact, err := g.store.Add(ctx, result.Content, time.Now())
	if err != nil {
		return fmt.Errorf("persist fact: %w", err)
	}

	logger.Info().Str("id", fact.ID).Msg("fact saved")
	return nil
}

func (g *Gateway) isDuplicate(ctx context.Context, content string) (bool, error) {
	results, err := g.store.Search(ctx, content, 1)
	if err != nil {
		return false, fmt.Errorf("dedup search: %w", err)
	}
	if len(results) == 0 {
		return false, nil
	}
	return results[0].Score > g.cfg.CompareThreshold, nil
}

// GetRelevant returns the stored facts relevant to a message as a
// bulleted list. The second return value is false when nothing passes
// the threshold, so callers can distinguish "no context" from an
// empty string.
func (g *Gateway) GetRelevant(ctx context.Context, message string) (string, bool) {
	logger := log.FromCtx(ctx)

	results, err := g.store.Search(ctx, message, 3)
	if err != nil {
		// A broken memory backend must not break the turn; proceed
		// without context.
		logger.Warn().Err(err).Msg("memory search failed, proceeding without context")
		return "", false
	}

	var lines []string
	for _, r := range results {
		if r.Score > g.cfg.ReturnThreshold {
			lines = append(lines, "- "+r.Content)
		}
	}

	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}
