package pipeline

import (
	"context"

	"github.com/sourcegraph/conc"
	"github.com/sandevgo/trackmate/pkg/log"
)

// Registry tracks fire-and-forget background tasks. Spawning never
// blocks the caller; concurrent execution is bounded by a semaphore.
// Drain provides the join point the tasks themselves lack, for
// orderly shutdown and for deterministic tests.
type Registry struct {
	wg  conc.WaitGroup
	sem chan struct{}
}

func NewRegistry(maxInFlight int) *Registry {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Registry{
		sem: make(chan struct{}, maxInFlight),
	}
}

// Spawn runs fn in the background. Errors and panics are logged and
// swallowed: a background task must never surface to the user-visible
// response.
func (r *Registry) Spawn(ctx context.Context, name string, fn func(ctx context.Context) error) {
	logger := log.FromCtx(ctx)

	// The task may outlive the turn that spawned it.
	bgCtx := context.WithoutCancel(ctx)

	r.wg.Go(func() {
		r.sem <- struct{}{}
		defer func() { <-r.sem }()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().Interface("panic", rec).Str("task", name).Msg("background task panicked")
			}
		}()

		if err := fn(bgCtx); err != nil {
			logger.Warn().Err(err).Str("task", name).Msg("background task failed")
		}
	})
}

// Drain blocks until every spawned task has finished.
func (r *Registry) Drain() {
	r.wg.Wait()
}
