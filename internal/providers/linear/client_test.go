package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLinear answers GraphQL operations by matching on the query text.
func fakeLinear(t *testing.T, handler func(query string, variables map[string]any) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		data := handler(payload.Query, payload.Variables)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))
}

func newTestClient(url string) *Client {
	return NewClient(&config.LinearConfig{
		APIKey:   "lin_api_test",
		TeamName: "Platform",
		Endpoint: url,
	})
}

func TestListTeamTickets(t *testing.T) {
	srv := fakeLinear(t, func(query string, variables map[string]any) any {
		switch {
		case strings.Contains(query, "query Teams"):
			return map[string]any{"teams": map[string]any{"nodes": []map[string]any{
				{"id": "team-1", "name": "Platform"},
				{"id": "team-2", "name": "Design"},
			}}}
		case strings.Contains(query, "TeamIssuesByStatus"):
			assert.Equal(t, "team-1", variables["teamId"])
			assert.Equal(t, "Todo", variables["status"])
			return map[string]any{"issues": map[string]any{"nodes": []map[string]any{
				{"id": "iss-1", "title": "Fix login", "state": map[string]any{"name": "Todo"}},
				{"id": "iss-2", "title": "Add caching", "state": map[string]any{"name": "Todo"}},
			}}}
		default:
			t.Fatalf("unexpected query: %s", query)
			return nil
		}
	})
	defer srv.Close()

	tickets, err := newTestClient(srv.URL).ListTeamTickets(context.Background(), core.StatusTodo)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Fix login", tickets[0].Title)
	assert.Equal(t, "Todo", tickets[0].State)
}

func TestListTeamTickets_TeamNotFound(t *testing.T) {
	srv := fakeLinear(t, func(query string, variables map[string]any) any {
		return map[string]any{"teams": map[string]any{"nodes": []map[string]any{
			{"id": "team-2", "name": "Design"},
		}}}
	})
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListTeamTickets(context.Background(), core.StatusTodo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team not found")
}

func TestCreateTicket_WithAssignee(t *testing.T) {
	var gotVars map[string]any
	srv := fakeLinear(t, func(query string, variables map[string]any) any {
		switch {
		case strings.Contains(query, "query Teams"):
			return map[string]any{"teams": map[string]any{"nodes": []map[string]any{
				{"id": "team-1", "name": "Platform"},
			}}}
		case strings.Contains(query, "TeamStates"):
			return map[string]any{"team": map[string]any{"states": map[string]any{"nodes": []map[string]any{
				{"id": "state-todo", "name": "Todo"},
				{"id": "state-done", "name": "Done"},
			}}}}
		case strings.Contains(query, "UserByEmail"):
			assert.Equal(t, "dev@example.com", variables["email"])
			return map[string]any{"users": map[string]any{"nodes": []map[string]any{
				{"id": "user-1"},
			}}}
		case strings.Contains(query, "mutation CreateIssue"):
			gotVars = variables
			return map[string]any{"issueCreate": map[string]any{
				"success": true,
				"issue": map[string]any{
					"id":       "iss-9",
					"title":    "Ship the release",
					"state":    map[string]any{"name": "Todo"},
					"assignee": map[string]any{"name": "Dev", "email": "dev@example.com"},
				},
			}}
		default:
			t.Fatalf("unexpected query: %s", query)
			return nil
		}
	})
	defer srv.Close()

	ticket, err := newTestClient(srv.URL).CreateTicket(context.Background(), core.CreateTicketRequest{
		Title:         "Ship the release",
		Description:   "Cut and publish v1.2",
		AssigneeEmail: "dev@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "iss-9", ticket.ID)
	require.NotNil(t, ticket.Assignee)
	assert.Equal(t, "dev@example.com", ticket.Assignee.Email)

	assert.Equal(t, "state-todo", gotVars["stateId"])
	assert.Equal(t, "user-1", gotVars["assigneeId"])
}

func TestRunQuery_GraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "authentication failed"}},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListUserTickets(context.Background(), "dev@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}
