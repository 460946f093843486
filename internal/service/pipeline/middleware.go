package pipeline

import (
	"context"

	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
	"github.com/sandevgo/trackmate/pkg/retry"
)

// Handler produces the assistant turn for a conversation stage.
type Handler func(ctx context.Context, conv *core.Conversation) (core.Turn, error)

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// Chain applies middlewares so the last one listed becomes the
// outermost wrapper.
func Chain(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

// WithRetry re-runs the handler on error using the retrier's backoff
// schedule. The error from the final attempt passes through unchanged.
func WithRetry(r *retry.Retrier) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
			var turn core.Turn
			err := r.Do(ctx, func() error {
				var opErr error
				turn, opErr = next(ctx, conv)
				return opErr
			})
			return turn, err
		}
	}
}

// WithIsolation converts a handler failure into a user-facing error
// turn so one stage cannot take down the whole exchange.
func WithIsolation(prefix string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
			turn, err := next(ctx, conv)
			if err != nil {
				log.FromCtx(ctx).Error().Err(err).Str("stage", prefix).Msg("stage failed, answering with error turn")
				return core.AssistantTurn(prefix + ": " + err.Error()), nil
			}
			return turn, nil
		}
	}
}
