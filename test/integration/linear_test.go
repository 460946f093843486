//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/internal/providers/linear"
)

// Requires a real Linear workspace. Run with:
//
//	LINEAR_API_KEY=... LINEAR_TEAM_NAME=... go test -tags integration ./test/integration
func TestLinearListTeamTickets(t *testing.T) {
	apiKey := os.Getenv("LINEAR_API_KEY")
	teamName := os.Getenv("LINEAR_TEAM_NAME")
	if apiKey == "" || teamName == "" {
		t.Skip("LINEAR_API_KEY and LINEAR_TEAM_NAME not set")
	}

	client := linear.NewClient(&config.LinearConfig{
		APIKey:   apiKey,
		TeamName: teamName,
		Endpoint: "https://api.linear.app/graphql",
	})

	tickets, err := client.ListTeamTickets(context.Background(), core.StatusTodo)
	if err != nil {
		t.Fatalf("ListTeamTickets failed: %v", err)
	}

	t.Logf("Found %d Todo tickets", len(tickets))
	if len(tickets) > 0 {
		t.Logf("Formatted:\n%s", core.FormatTickets(tickets))
	}
}
