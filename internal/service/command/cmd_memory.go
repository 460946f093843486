package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/trackmate/internal/core"
)

const defaultMemoryListSize = 10

// MemoryCommand shows the most recently remembered facts.
type MemoryCommand struct {
	store     core.FactStore
	formatter *ResponseFormatter
}

func NewMemoryCommand(store core.FactStore) *MemoryCommand {
	return &MemoryCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *MemoryCommand) Name() string {
	return "memory"
}

func (c *MemoryCommand) Description() string {
	return "Show recently remembered facts"
}

func (c *MemoryCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	n := defaultMemoryListSize
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return c.formatter.Usage("/memory [count]"), nil
		}
		n = parsed
	}

	facts, err := c.store.ListRecent(ctx, n)
	if err != nil {
		return "", fmt.Errorf("failed to list facts: %w", err)
	}
	if len(facts) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Memory"),
			"Nothing remembered yet.",
		), nil
	}

	items := make([]string, 0, len(facts))
	for _, fact := range facts {
		items = append(items, fmt.Sprintf("%s  _(%s)_", fact.Content, fact.CreatedAt.Format("2006-01-02")))
	}
	return c.formatter.Combine(
		c.formatter.Info("Memory"),
		c.formatter.List(items),
	), nil
}
