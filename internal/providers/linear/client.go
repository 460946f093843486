package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
)

// Client implements core.Ticketing against the Linear GraphQL API.
type Client struct {
	http     *http.Client
	endpoint string
	apiKey   string
	teamName string
}

func NewClient(cfg *config.LinearConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		teamName: cfg.TeamName,
	}
}

type wireIssue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	State       struct {
		Name string `json:"name"`
	} `json:"state"`
	Assignee *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"assignee"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
	DueDate   string `json:"dueDate"`
}

func (w wireIssue) toTicket() core.Ticket {
	t := core.Ticket{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Priority:    w.Priority,
		State:       w.State.Name,
		URL:         w.URL,
		CreatedAt:   w.CreatedAt,
		DueDate:     w.DueDate,
	}
	if w.Assignee != nil {
		t.Assignee = &core.Assignee{Name: w.Assignee.Name, Email: w.Assignee.Email}
	}
	return t
}

func (c *Client) runQuery(ctx context.Context, query string, variables map[string]any, out any) error {
	payload := map[string]any{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (c *Client) teamIDByName(ctx context.Context, name string) (string, error) {
	var data struct {
		Teams struct {
			Nodes []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.runQuery(ctx, queryTeams, nil, &data); err != nil {
		return "", err
	}
	for _, team := range data.Teams.Nodes {
		if team.Name == name {
			return team.ID, nil
		}
	}
	return "", fmt.Errorf("team not found: %s", name)
}

func (c *Client) stateIDByName(ctx context.Context, teamID string, status core.TicketStatus) (string, error) {
	var data struct {
		Team struct {
			States struct {
				Nodes []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"nodes"`
			} `json:"states"`
		} `json:"team"`
	}
	if err := c.runQuery(ctx, queryTeamStates, map[string]any{"teamId": teamID}, &data); err != nil {
		return "", err
	}
	for _, state := range data.Team.States.Nodes {
		if state.Name == string(status) {
			return state.ID, nil
		}
	}
	return "", fmt.Errorf("workflow state not found: %s", status)
}

func (c *Client) userIDByEmail(ctx context.Context, email string) (string, error) {
	var data struct {
		Users struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"users"`
	}
	if err := c.runQuery(ctx, queryUserByEmail, map[string]any{"email": email}, &data); err != nil {
		return "", err
	}
	if len(data.Users.Nodes) == 0 {
		return "", fmt.Errorf("user not found with email: %s", email)
	}
	return data.Users.Nodes[0].ID, nil
}

// CreateTicket creates a new issue in the configured team, in the
// Todo state, optionally assigned by email.
func (c *Client) CreateTicket(ctx context.Context, req core.CreateTicketRequest) (core.Ticket, error) {
	teamID, err := c.teamIDByName(ctx, c.teamName)
	if err != nil {
		return core.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	stateID, err := c.stateIDByName(ctx, teamID, core.StatusTodo)
	if err != nil {
		return core.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	variables := map[string]any{
		"teamId":      teamID,
		"title":       req.Title,
		"description": req.Description,
		"stateId":     stateID,
	}
	if req.AssigneeEmail != "" {
		assigneeID, err := c.userIDByEmail(ctx, req.AssigneeEmail)
		if err != nil {
			return core.Ticket{}, fmt.Errorf("create ticket: %w", err)
		}
		variables["assigneeId"] = assigneeID
	}

	var data struct {
		IssueCreate struct {
			Success bool      `json:"success"`
			Issue   wireIssue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := c.runQuery(ctx, mutationCreateIssue, variables, &data); err != nil {
		return core.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	if !data.IssueCreate.Success {
		return core.Ticket{}, fmt.Errorf("create ticket: tracker reported failure")
	}

	log.FromCtx(ctx).Info().
		Str("id", data.IssueCreate.Issue.ID).
		Str("title", data.IssueCreate.Issue.Title).
		Msg("ticket created")

	return data.IssueCreate.Issue.toTicket(), nil
}

// ListTeamTickets returns the configured team's issues in the given
// workflow state.
func (c *Client) ListTeamTickets(ctx context.Context, status core.TicketStatus) ([]core.Ticket, error) {
	teamID, err := c.teamIDByName(ctx, c.teamName)
	if err != nil {
		return nil, fmt.Errorf("list team tickets: %w", err)
	}

	var data struct {
		Issues struct {
			Nodes []wireIssue `json:"nodes"`
		} `json:"issues"`
	}
	variables := map[string]any{"teamId": teamID, "status": string(status)}
	if err := c.runQuery(ctx, queryTeamIssuesByStatus, variables, &data); err != nil {
		return nil, fmt.Errorf("list team tickets: %w", err)
	}

	tickets := make([]core.Ticket, 0, len(data.Issues.Nodes))
	for _, issue := range data.Issues.Nodes {
		tickets = append(tickets, issue.toTicket())
	}
	return tickets, nil
}

// ListUserTickets returns all issues assigned to the user with the
// given email.
func (c *Client) ListUserTickets(ctx context.Context, email string) ([]core.Ticket, error) {
	userID, err := c.userIDByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list user tickets: %w", err)
	}

	var data struct {
		User struct {
			AssignedIssues struct {
				Nodes []wireIssue `json:"nodes"`
			} `json:"assignedIssues"`
		} `json:"user"`
	}
	if err := c.runQuery(ctx, queryUserIssues, map[string]any{"userId": userID}, &data); err != nil {
		return nil, fmt.Errorf("list user tickets: %w", err)
	}

	tickets := make([]core.Ticket, 0, len(data.User.AssignedIssues.Nodes))
	for _, issue := range data.User.AssignedIssues.Nodes {
		tickets = append(tickets, issue.toTicket())
	}
	return tickets, nil
}
