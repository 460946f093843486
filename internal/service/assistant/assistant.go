package assistant

import (
	"context"
	"sync"

	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/internal/service/pipeline"
	"github.com/sandevgo/trackmate/pkg/log"
)

// Assistant ties sessions, slash commands and the pipeline together.
// Each session ID owns one conversation; transports share a single
// Assistant across all their sessions.
type Assistant struct {
	pipeline *pipeline.Pipeline
	commands core.CmdRouter

	mu       sync.Mutex
	sessions map[string]*session
}

// session serializes pipeline runs per conversation: at most one turn
// is in flight per session at any time.
type session struct {
	mu   sync.Mutex
	conv *core.Conversation
}

func New(p *pipeline.Pipeline, commands core.CmdRouter) *Assistant {
	return &Assistant{
		pipeline: p,
		commands: commands,
		sessions: make(map[string]*session),
	}
}

// Run handles one user message and returns the assistant turn. Slash
// commands short-circuit the pipeline and leave the conversation
// history untouched.
func (a *Assistant) Run(ctx context.Context, sessionID, message string) (core.Turn, error) {
	if a.commands != nil {
		if out, handled := a.commands.Execute(ctx, sessionID, message); handled {
			return core.AssistantTurn(out), nil
		}
	}

	sess := a.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.conv.Append(core.UserTurn(message))

	turn, err := a.pipeline.Run(ctx, sess.conv)
	if err != nil {
		return core.Turn{}, err
	}

	log.FromCtx(ctx).Debug().
		Str("session", sessionID).
		Str("intent", string(sess.conv.NextIntent)).
		Int("turns", len(sess.conv.Turns)).
		Msg("handled message")
	return turn, nil
}

// Drain waits for outstanding background memory writes.
func (a *Assistant) Drain() {
	a.pipeline.Drain()
}

func (a *Assistant) session(sessionID string) *session {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, ok := a.sessions[sessionID]
	if !ok {
		sess = &session{conv: core.NewConversation(sessionID)}
		a.sessions[sessionID] = sess
	}
	return sess
}
