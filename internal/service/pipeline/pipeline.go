package pipeline

import (
	"context"
	"fmt"

	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
	"github.com/sandevgo/trackmate/pkg/retry"
)

// MemoryGateway is the pipeline's view of the memory subsystem.
type MemoryGateway interface {
	// ExtractAndSave analyzes a user message and persists anything
	// worth remembering.
	ExtractAndSave(ctx context.Context, message string) error
	// GetRelevant returns memory context for a message. The boolean
	// reports whether any relevant memory was found.
	GetRelevant(ctx context.Context, message string) (string, bool)
}

// IntentRouter classifies the latest user message into an intent.
type IntentRouter interface {
	Route(ctx context.Context, conv *core.Conversation) (core.Intent, error)
}

const (
	fallbackErrPrefix      = "Something went wrong. Please try again."
	createTaskErrPrefix    = "Error creating ticket"
	currentIssuesErrPrefix = "Error getting current issues"
	userIssuesErrPrefix    = "Error getting user issues"
)

// Pipeline runs the four-stage exchange for one user turn: memory
// capture is spawned in the background, memory injection and routing
// happen inline, then the routed handler produces the assistant turn.
type Pipeline struct {
	memory   MemoryGateway
	router   IntentRouter
	registry *Registry

	dispatch map[core.Intent]Handler
	fallback Handler
}

func NewPipeline(memory MemoryGateway, router IntentRouter, registry *Registry, handlers *Handlers, retrier *retry.Retrier) *Pipeline {
	wrap := func(h Handler, prefix string) Handler {
		return Chain(h, WithRetry(retrier), WithIsolation(prefix))
	}

	fallback := wrap(handlers.Fallback, fallbackErrPrefix)
	return &Pipeline{
		memory:   memory,
		router:   router,
		registry: registry,
		dispatch: map[core.Intent]Handler{
			core.IntentFallback:         fallback,
			core.IntentCreateTask:       wrap(handlers.CreateTask, createTaskErrPrefix),
			core.IntentGetCurrentIssues: wrap(handlers.CurrentIssues, currentIssuesErrPrefix),
			core.IntentGetUserIssues:    wrap(handlers.UserIssues, userIssuesErrPrefix),
		},
		fallback: fallback,
	}
}

// Run processes the conversation's latest user turn and appends exactly
// one assistant turn. It fails only when the conversation has no user
// turn to respond to.
func (p *Pipeline) Run(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
	logger := log.FromCtx(ctx)

	userTurn, ok := conv.LastUserTurn()
	if !ok {
		return core.Turn{}, fmt.Errorf("conversation has no user turn")
	}
	message := userTurn.Content

	// Capture runs decoupled from response latency; a late or failed
	// write never affects this turn's reply.
	p.registry.Spawn(ctx, "memory_capture", func(ctx context.Context) error {
		return p.memory.ExtractAndSave(ctx, message)
	})

	memoryContext, found := p.memory.GetRelevant(ctx, message)
	if !found {
		memoryContext = ""
	}
	conv.MemoryContext = memoryContext

	intent, err := p.router.Route(ctx, conv)
	if err != nil {
		logger.Warn().Err(err).Msg("routing failed, falling back to conversational handler")
		intent = core.IntentFallback
	}
	conv.NextIntent = intent

	handler, ok := p.dispatch[intent]
	if !ok {
		handler = p.fallback
	}

	turn, err := handler(ctx, conv)
	if err != nil {
		// Isolation absorbs handler failures; this is a belt for a
		// misconfigured dispatch table.
		turn = core.AssistantTurn(fallbackErrPrefix + ": " + err.Error())
	}

	conv.Append(turn)
	return turn, nil
}

// Drain waits for all spawned memory captures to finish.
func (p *Pipeline) Drain() {
	p.registry.Drain()
}
