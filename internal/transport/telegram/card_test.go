package telegram

import (
	"strings"
	"testing"
)

func TestRenderTicketCard(t *testing.T) {
	card := renderTicketCard(map[string]string{
		"task_id":        "TM-42",
		"task_name":      "Fix login page",
		"description":    "Users cannot sign in with SSO.",
		"assignee_email": "dev@acme.io",
	})

	for _, want := range []string{"Fix login page", "Users cannot sign in with SSO.", "dev@acme.io", "TM-42"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestRenderTicketCardSkipsNonTicketTurns(t *testing.T) {
	if got := renderTicketCard(nil); got != "" {
		t.Errorf("expected empty card, got %q", got)
	}
	if got := renderTicketCard(map[string]string{"foo": "bar"}); got != "" {
		t.Errorf("expected empty card, got %q", got)
	}
}
