package core

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		raw      string
		expected Intent
	}{
		{"fallback", IntentFallback},
		{"create_task", IntentCreateTask},
		{"get_current_issues", IntentGetCurrentIssues},
		{"get_user_issues", IntentGetUserIssues},
		{"", IntentFallback},
		{"delete_everything", IntentFallback},
		{"CREATE_TASK", IntentFallback},
		{"create task", IntentFallback},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseIntent(tt.raw); got != tt.expected {
				t.Errorf("ParseIntent(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseTicketStatus_DefaultsToTodo(t *testing.T) {
	if got := ParseTicketStatus("Urgent"); got != StatusTodo {
		t.Errorf("expected Todo, got %q", got)
	}
	if got := ParseTicketStatus("In Progress"); got != StatusInProgress {
		t.Errorf("expected In Progress, got %q", got)
	}
}
