package core

// Intent is the closed classification of what a user turn requires.
// Anything the router produces outside this set must resolve to
// IntentFallback, never to an error.
type Intent string

const (
	IntentFallback         Intent = "fallback"
	IntentCreateTask       Intent = "create_task"
	IntentGetCurrentIssues Intent = "get_current_issues"
	IntentGetUserIssues    Intent = "get_user_issues"
)

// Intents lists every valid intent in routing order.
func Intents() []Intent {
	return []Intent{
		IntentFallback,
		IntentCreateTask,
		IntentGetCurrentIssues,
		IntentGetUserIssues,
	}
}

// ParseIntent maps a raw label to an Intent, defaulting to
// IntentFallback for unknown or malformed values.
func ParseIntent(raw string) Intent {
	switch Intent(raw) {
	case IntentCreateTask:
		return IntentCreateTask
	case IntentGetCurrentIssues:
		return IntentGetCurrentIssues
	case IntentGetUserIssues:
		return IntentGetUserIssues
	default:
		return IntentFallback
	}
}
