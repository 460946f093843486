package core

import "testing"

func TestFormatTickets(t *testing.T) {
	tickets := []Ticket{
		{Title: "Fix login flow", State: "Todo"},
		{Title: "Upgrade database", State: "In Progress"},
	}

	got := FormatTickets(tickets)
	want := "1. Fix login flow - Todo\n2. Upgrade database - In Progress"
	if got != want {
		t.Errorf("FormatTickets = %q, want %q", got, want)
	}
}

func TestFormatTickets_Empty(t *testing.T) {
	if got := FormatTickets(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestParseTicketStatus(t *testing.T) {
	cases := map[string]TicketStatus{
		"Todo":        StatusTodo,
		"In Progress": StatusInProgress,
		"in progress": StatusInProgress,
		"in_progress": StatusInProgress,
		"DONE":        StatusDone,
		"cancelled":   StatusCanceled,
		"Backlog":     StatusBacklog,
		"":            StatusTodo,
		"garbage":     StatusTodo,
	}
	for raw, want := range cases {
		if got := ParseTicketStatus(raw); got != want {
			t.Errorf("ParseTicketStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestConversation_LastUserTurn(t *testing.T) {
	c := NewConversation("test")
	if _, ok := c.LastUserTurn(); ok {
		t.Fatal("expected no user turn in empty conversation")
	}

	c.Append(UserTurn("first"))
	c.Append(AssistantTurn("reply"))
	c.Append(UserTurn("second"))
	c.Append(AssistantTurn("another reply"))

	turn, ok := c.LastUserTurn()
	if !ok {
		t.Fatal("expected a user turn")
	}
	if turn.Content != "second" {
		t.Errorf("expected latest user turn, got %q", turn.Content)
	}
}
