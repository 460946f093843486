package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/trackmate/internal/core"
)

// IssuesCommand lists the team's issues directly, bypassing the
// language model.
type IssuesCommand struct {
	ticketing core.Ticketing
	formatter *ResponseFormatter
}

func NewIssuesCommand(ticketing core.Ticketing) *IssuesCommand {
	return &IssuesCommand{
		ticketing: ticketing,
		formatter: NewResponseFormatter(),
	}
}

func (c *IssuesCommand) Name() string {
	return "issues"
}

func (c *IssuesCommand) Description() string {
	return "List team issues, optionally by state"
}

func (c *IssuesCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	status := core.StatusTodo
	if len(args) > 0 {
		status = core.ParseTicketStatus(strings.Join(args, " "))
	}

	tickets, err := c.ticketing.ListTeamTickets(ctx, status)
	if err != nil {
		return "", fmt.Errorf("failed to list issues: %w", err)
	}
	if len(tickets) == 0 {
		return c.formatter.Combine(
			c.formatter.Info(fmt.Sprintf("Issues · %s", status)),
			"No issues found.",
			c.formatter.Tip("Try `/issues in progress` or `/issues backlog`."),
		), nil
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Issues · %s", status)),
		core.FormatTickets(tickets),
	), nil
}
