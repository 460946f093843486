package core

import "time"

const (
	AppName          = "Trackmate"
	AppUserAgent     = "Trackmate-Assistant/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/trackmate"
	AppVersion       = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single exchange in a conversation. Params is an optional
// side channel for structured data a transport may render specially
// (e.g. the created-ticket card).
type Turn struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Params    map[string]string `json:"params,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content, CreatedAt: time.Now()}
}

func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content, CreatedAt: time.Now()}
}

// Conversation is the unit of pipeline input and output. Turns are
// append-only and chronological. NextIntent and MemoryContext are
// transient: both are recomputed on every pipeline run and carry no
// meaning across turns.
type Conversation struct {
	ID      string `json:"id"`
	Turns   []Turn `json:"turns"`
	Summary string `json:"summary,omitempty"`

	NextIntent    Intent `json:"-"`
	MemoryContext string `json:"-"`
}

func NewConversation(id string) *Conversation {
	return &Conversation{ID: id}
}

func (c *Conversation) Append(t Turn) {
	c.Turns = append(c.Turns, t)
}

// LastUserTurn returns the most recent user turn, if any.
func (c *Conversation) LastUserTurn() (Turn, bool) {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleUser {
			return c.Turns[i], true
		}
	}
	return Turn{}, false
}

// LastTurn returns the final turn, if any.
func (c *Conversation) LastTurn() (Turn, bool) {
	if len(c.Turns) == 0 {
		return Turn{}, false
	}
	return c.Turns[len(c.Turns)-1], true
}
