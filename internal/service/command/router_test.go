package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/trackmate/internal/core"
)

type stubStore struct {
	facts   []core.Fact
	listErr error
}

func (s *stubStore) Add(ctx context.Context, content string, ts time.Time) (core.Fact, error) {
	return core.Fact{}, errors.New("not implemented")
}

func (s *stubStore) Search(ctx context.Context, query string, k int) ([]core.ScoredFact, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStore) ListRecent(ctx context.Context, n int) ([]core.Fact, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if n > len(s.facts) {
		n = len(s.facts)
	}
	return s.facts[:n], nil
}

type stubTicketing struct {
	tickets []core.Ticket
	status  core.TicketStatus
}

func (s *stubTicketing) CreateTicket(ctx context.Context, req core.CreateTicketRequest) (core.Ticket, error) {
	return core.Ticket{}, errors.New("not implemented")
}

func (s *stubTicketing) ListTeamTickets(ctx context.Context, status core.TicketStatus) ([]core.Ticket, error) {
	s.status = status
	return s.tickets, nil
}

func (s *stubTicketing) ListUserTickets(ctx context.Context, email string) ([]core.Ticket, error) {
	return nil, errors.New("not implemented")
}

func TestRouterIgnoresPlainMessages(t *testing.T) {
	router := New(nil)
	_, handled := router.Execute(context.Background(), "s1", "hello there")
	assert.False(t, handled)
}

func TestRouterUnknownCommand(t *testing.T) {
	router := New(nil)
	out, handled := router.Execute(context.Background(), "s1", "/frobnicate")
	require.True(t, handled)
	assert.Equal(t, "Unknown command: /frobnicate", out)
}

func TestMemoryCommandListsFacts(t *testing.T) {
	store := &stubStore{facts: []core.Fact{
		{Content: "Lives in Madrid", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Content: "Prefers email over calls", CreatedAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}}
	router := New([]core.Command{NewMemoryCommand(store)})

	out, handled := router.Execute(context.Background(), "s1", "/memory")
	require.True(t, handled)
	assert.Contains(t, out, "Lives in Madrid")
	assert.Contains(t, out, "Prefers email over calls")
}

func TestMemoryCommandBadCount(t *testing.T) {
	router := New([]core.Command{NewMemoryCommand(&stubStore{})})

	out, handled := router.Execute(context.Background(), "s1", "/memory zero")
	require.True(t, handled)
	assert.Contains(t, out, "/memory [count]")
}

func TestMemoryCommandErrorIsReported(t *testing.T) {
	store := &stubStore{listErr: errors.New("db locked")}
	router := New([]core.Command{NewMemoryCommand(store)})

	out, handled := router.Execute(context.Background(), "s1", "/memory")
	require.True(t, handled)
	assert.Contains(t, out, "db locked")
}

func TestHelpCommandListsEverything(t *testing.T) {
	router := New(NewCommands(&stubStore{}, &stubTicketing{}))

	out, handled := router.Execute(context.Background(), "s1", "/help")
	require.True(t, handled)
	for _, name := range []string{"/help", "/memory", "/issues"} {
		assert.Contains(t, out, name)
	}
}

func TestIssuesCommandParsesStatusArgs(t *testing.T) {
	ticketing := &stubTicketing{tickets: []core.Ticket{
		{Title: "Fix login page", State: "In Progress"},
	}}
	router := New([]core.Command{NewIssuesCommand(ticketing)})

	out, handled := router.Execute(context.Background(), "s1", "/issues in progress")
	require.True(t, handled)
	assert.Equal(t, core.StatusInProgress, ticketing.status)
	assert.Contains(t, out, "1. Fix login page - In Progress")
}
