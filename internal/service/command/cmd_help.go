package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/sandevgo/trackmate/internal/core"
)

// HelpCommand lists the available slash commands.
type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

func NewHelpCommand(commands []core.Command) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	all := append([]core.Command{c}, c.commands...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })

	items := make([]string, 0, len(all))
	for _, cmd := range all {
		items = append(items, fmt.Sprintf("`/%s` — %s", cmd.Name(), cmd.Description()))
	}

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
		c.formatter.Tip("Anything else you type goes to the assistant."),
	), nil
}
