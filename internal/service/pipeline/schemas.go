package pipeline

import (
	"encoding/json"

	"github.com/sandevgo/trackmate/internal/core"
)

type routerDecision struct {
	NextNode string `json:"next_node"`
}

var routerSchema = core.Schema{
	Name: "router_decision",
	Definition: json.RawMessage(`{
		"type": "object",
		"properties": {
			"next_node": {
				"type": "string",
				"enum": ["fallback", "create_task", "get_current_issues", "get_user_issues"]
			}
		},
		"required": ["next_node"],
		"additionalProperties": false
	}`),
}

type createTaskResult struct {
	TaskName      string `json:"task_name"`
	Description   string `json:"description"`
	AssigneeEmail string `json:"assignee_email"`
	Message       string `json:"message"`
}

var createTaskSchema = core.Schema{
	Name: "create_task",
	Definition: json.RawMessage(`{
		"type": "object",
		"properties": {
			"task_name": {"type": "string"},
			"description": {"type": "string"},
			"assignee_email": {"type": "string"},
			"message": {"type": "string"}
		},
		"required": ["task_name", "description", "assignee_email", "message"],
		"additionalProperties": false
	}`),
}

type currentIssuesResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var currentIssuesSchema = core.Schema{
	Name: "current_issues",
	Definition: json.RawMessage(`{
		"type": "object",
		"properties": {
			"status": {
				"type": "string",
				"enum": ["Todo", "In Progress", "Done", "Canceled", "Backlog"]
			},
			"message": {"type": "string"}
		},
		"required": ["status", "message"],
		"additionalProperties": false
	}`),
}

type userIssuesResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

var userIssuesSchema = core.Schema{
	Name: "user_issues",
	Definition: json.RawMessage(`{
		"type": "object",
		"properties": {
			"email": {"type": "string"},
			"message": {"type": "string"}
		},
		"required": ["email", "message"],
		"additionalProperties": false
	}`),
}
