package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/trackmate/internal/core"
)

type scriptedClassifier struct {
	// responses maps schema name to the raw JSON to return.
	responses map[string]string
	err       error
	calls     int
}

func (c *scriptedClassifier) Classify(ctx context.Context, history []core.Turn, schema core.Schema, system string) (json.RawMessage, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	raw, ok := c.responses[schema.Name]
	if !ok {
		return nil, errors.New("no scripted response for schema " + schema.Name)
	}
	return json.RawMessage(raw), nil
}

func TestRouteKnownIntent(t *testing.T) {
	classifier := &scriptedClassifier{responses: map[string]string{
		"router_decision": `{"next_node": "create_task"}`,
	}}
	router := NewRouter(classifier, fastRetrier(0))

	conv := core.NewConversation("c1")
	conv.Append(core.UserTurn("create a ticket to fix the login page"))

	intent, err := router.Route(context.Background(), conv)
	require.NoError(t, err)
	assert.Equal(t, core.IntentCreateTask, intent)
}

func TestRouteUnknownLabelDefaultsToFallback(t *testing.T) {
	classifier := &scriptedClassifier{responses: map[string]string{
		"router_decision": `{"next_node": "summarize_sprint"}`,
	}}
	router := NewRouter(classifier, fastRetrier(0))

	conv := core.NewConversation("c1")
	conv.Append(core.UserTurn("hello"))

	intent, err := router.Route(context.Background(), conv)
	require.NoError(t, err)
	assert.Equal(t, core.IntentFallback, intent)
}

func TestRouteRetriesThenFails(t *testing.T) {
	classifier := &scriptedClassifier{err: errors.New("model unavailable")}
	router := NewRouter(classifier, fastRetrier(2))

	conv := core.NewConversation("c1")
	conv.Append(core.UserTurn("hello"))

	intent, err := router.Route(context.Background(), conv)
	require.Error(t, err)
	assert.Equal(t, core.IntentFallback, intent)
	assert.Equal(t, 3, classifier.calls)
}
