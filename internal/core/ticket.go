package core

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusTodo       TicketStatus = "Todo"
	StatusInProgress TicketStatus = "In Progress"
	StatusDone       TicketStatus = "Done"
	StatusCanceled   TicketStatus = "Canceled"
	StatusBacklog    TicketStatus = "Backlog"
)

// ParseTicketStatus maps a raw status label to a TicketStatus,
// defaulting to Todo for unknown values. Matching ignores case.
func ParseTicketStatus(raw string) TicketStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in progress", "in_progress":
		return StatusInProgress
	case "done":
		return StatusDone
	case "canceled", "cancelled":
		return StatusCanceled
	case "backlog":
		return StatusBacklog
	default:
		return StatusTodo
	}
}

type Assignee struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Ticket is an issue-tracker record. It is owned by the tracker; the
// assistant only reads it through the Ticketing port.
type Ticket struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    int       `json:"priority,omitempty"`
	State       string    `json:"state,omitempty"`
	Assignee    *Assignee `json:"assignee,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
}

type CreateTicketRequest struct {
	Title         string
	Description   string
	AssigneeEmail string
}

// FormatTickets renders tickets as a 1-indexed "title - state" list.
func FormatTickets(tickets []Ticket) string {
	lines := make([]string, 0, len(tickets))
	for i, t := range tickets {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, t.Title, t.State))
	}
	return strings.Join(lines, "\n")
}
