package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
	"github.com/sandevgo/trackmate/pkg/retry"
)

// Router classifies the latest user message into an intent.
type Router struct {
	classifier core.Classifier
	retrier    *retry.Retrier
}

func NewRouter(classifier core.Classifier, retrier *retry.Retrier) *Router {
	return &Router{
		classifier: classifier,
		retrier:    retrier,
	}
}

// Route returns the intent for the conversation's latest user message.
// Labels the classifier invents map to the fallback intent.
func (r *Router) Route(ctx context.Context, conv *core.Conversation) (core.Intent, error) {
	history := TrimHistory(conv.Turns, routeHistoryBudget)

	var decision routerDecision
	err := r.retrier.Do(ctx, func() error {
		raw, err := r.classifier.Classify(ctx, history, routerSchema, routerSystemPrompt)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &decision); err != nil {
			return fmt.Errorf("decode router decision: %w", err)
		}
		return nil
	})
	if err != nil {
		return core.IntentFallback, err
	}

	intent := core.ParseIntent(decision.NextNode)
	log.FromCtx(ctx).Debug().Str("intent", string(intent)).Msg("routed message")
	return intent, nil
}

// Routing only needs recent context, not the whole transcript.
const routeHistoryBudget = 1000
