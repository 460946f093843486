package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/trackmate/internal/core"
)

// Handlers implements the per-intent actions. Every external call goes
// through the ports injected at construction time.
type Handlers struct {
	chatter    core.Chatter
	classifier core.Classifier
	ticketing  core.Ticketing

	historyBudget int
}

func NewHandlers(chatter core.Chatter, classifier core.Classifier, ticketing core.Ticketing, historyBudget int) *Handlers {
	return &Handlers{
		chatter:       chatter,
		classifier:    classifier,
		ticketing:     ticketing,
		historyBudget: historyBudget,
	}
}

// Fallback answers conversationally, grounding the reply in whatever
// memory context the injection stage attached.
func (h *Handlers) Fallback(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
	history := TrimHistory(conv.Turns, h.historyBudget)
	reply, err := h.chatter.Chat(ctx, history, fallbackSystemPrompt(conv.MemoryContext))
	if err != nil {
		return core.Turn{}, err
	}
	return core.AssistantTurn(reply), nil
}

// CreateTask extracts ticket fields from the conversation and creates
// the ticket in the tracker.
func (h *Handlers) CreateTask(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
	var result createTaskResult
	if err := h.classify(ctx, conv, createTaskSchema, createTaskSystemPrompt, &result); err != nil {
		return core.Turn{}, err
	}
	if result.TaskName == "" {
		return core.Turn{}, fmt.Errorf("no task name extracted from conversation")
	}
	if result.Description == "" {
		result.Description = result.TaskName
	}

	ticket, err := h.ticketing.CreateTicket(ctx, core.CreateTicketRequest{
		Title:         result.TaskName,
		Description:   result.Description,
		AssigneeEmail: result.AssigneeEmail,
	})
	if err != nil {
		return core.Turn{}, err
	}

	content := result.Message
	if ticket.URL != "" {
		content += "\n" + ticket.URL
	}
	turn := core.AssistantTurn(content)
	turn.Params = map[string]string{
		"task_name":      ticket.Title,
		"description":    ticket.Description,
		"task_id":        ticket.ID,
		"assignee_email": result.AssigneeEmail,
	}
	return turn, nil
}

// CurrentIssues lists the team's issues in the requested workflow state.
func (h *Handlers) CurrentIssues(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
	var result currentIssuesResult
	if err := h.classify(ctx, conv, currentIssuesSchema, currentIssuesSystemPrompt, &result); err != nil {
		return core.Turn{}, err
	}

	tickets, err := h.ticketing.ListTeamTickets(ctx, core.ParseTicketStatus(result.Status))
	if err != nil {
		return core.Turn{}, err
	}
	return core.AssistantTurn(listReply(result.Message, tickets)), nil
}

// UserIssues lists the issues assigned to the person named in the
// conversation.
func (h *Handlers) UserIssues(ctx context.Context, conv *core.Conversation) (core.Turn, error) {
	var result userIssuesResult
	if err := h.classify(ctx, conv, userIssuesSchema, userIssuesSystemPrompt, &result); err != nil {
		return core.Turn{}, err
	}
	if result.Email == "" {
		return core.Turn{}, fmt.Errorf("no assignee email extracted from conversation")
	}

	tickets, err := h.ticketing.ListUserTickets(ctx, result.Email)
	if err != nil {
		return core.Turn{}, err
	}
	return core.AssistantTurn(listReply(result.Message, tickets)), nil
}

func (h *Handlers) classify(ctx context.Context, conv *core.Conversation, schema core.Schema, system string, out any) error {
	history := TrimHistory(conv.Turns, h.historyBudget)
	raw, err := h.classifier.Classify(ctx, history, schema, system)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s result: %w", schema.Name, err)
	}
	return nil
}

func listReply(message string, tickets []core.Ticket) string {
	if len(tickets) == 0 {
		return message + "\n\nNo issues found."
	}
	return message + "\n\n" + core.FormatTickets(tickets)
}
