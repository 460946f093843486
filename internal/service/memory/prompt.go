package memory

import (
	"encoding/json"

	"github.com/sandevgo/trackmate/internal/core"
)

const analysisSystemPrompt = `You decide whether a chat message contains a long-term fact about the user worth remembering across conversations.

Save only durable personal information: preferences, role, location, habits, standing instructions, the projects and teammates they mention by name. Never save greetings, small talk, one-off requests, or anything about the current task itself.

When a fact is worth saving, rewrite it as a short self-contained sentence ("Lives in Madrid", not "he lives there"). When nothing is worth saving, set should_save to false and leave content empty.`

// analysis is the structured result of the save-worthiness check.
type analysis struct {
	ShouldSave bool   `json:"should_save"`
	Content    string `json:"content"`
}

var analysisSchema = core.Schema{
	Name: "memory_analysis",
	Definition: json.RawMessage(`{
		"type": "object",
		"properties": {
			"should_save": {
				"type": "boolean",
				"description": "Whether the message contains a durable fact about the user"
			},
			"content": {
				"type": "string",
				"description": "The fact rewritten as a short self-contained sentence, empty when should_save is false"
			}
		},
		"required": ["should_save", "content"],
		"additionalProperties": false
	}`),
}
