package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/retry"
)

func fastRetrier(maxRetries int) *retry.Retrier {
	return retry.NewRetrier(&retry.Config{
		MaxRetries:    maxRetries,
		BackoffFactor: 1.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	})
}

func TestWithRetryRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	h := func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
		calls++
		if calls < 3 {
			return core.Turn{}, errors.New("transient")
		}
		return core.AssistantTurn("ok"), nil
	}

	wrapped := Chain(h, WithRetry(fastRetrier(3)))
	turn, err := wrapped(context.Background(), core.NewConversation("c1"))
	require.NoError(t, err)
	assert.Equal(t, "ok", turn.Content)
	assert.Equal(t, 3, calls)
}

func TestWithRetryReturnsFinalError(t *testing.T) {
	finalErr := errors.New("still broken")
	calls := 0
	h := func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
		calls++
		return core.Turn{}, finalErr
	}

	wrapped := Chain(h, WithRetry(fastRetrier(2)))
	_, err := wrapped(context.Background(), core.NewConversation("c1"))
	require.ErrorIs(t, err, finalErr)
	assert.Equal(t, 3, calls)
}

func TestWithIsolationAbsorbsFailure(t *testing.T) {
	h := func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
		return core.Turn{}, errors.New("tracker unreachable")
	}

	wrapped := Chain(h, WithIsolation("Error creating ticket"))
	turn, err := wrapped(context.Background(), core.NewConversation("c1"))
	require.NoError(t, err)
	assert.Equal(t, core.RoleAssistant, turn.Role)
	assert.Equal(t, "Error creating ticket: tracker unreachable", turn.Content)
}

func TestWithIsolationPassesSuccessThrough(t *testing.T) {
	h := func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
		return core.AssistantTurn("all good"), nil
	}

	wrapped := Chain(h, WithIsolation("Error creating ticket"))
	turn, err := wrapped(context.Background(), core.NewConversation("c1"))
	require.NoError(t, err)
	assert.Equal(t, "all good", turn.Content)
}

func TestChainRetriesBeforeIsolating(t *testing.T) {
	calls := 0
	h := func(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
		calls++
		return core.Turn{}, errors.New("boom")
	}

	// Retry innermost, isolation outermost: all attempts happen before
	// the failure is converted into a conversational turn.
	wrapped := Chain(h, WithRetry(fastRetrier(2)), WithIsolation("Something went wrong. Please try again."))
	turn, err := wrapped(context.Background(), core.NewConversation("c1"))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, strings.HasPrefix(turn.Content, "Something went wrong. Please try again.: "))
}
