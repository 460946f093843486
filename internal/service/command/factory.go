package command

import (
	"github.com/sandevgo/trackmate/internal/core"
)

func NewCommands(
	store core.FactStore,
	ticketing core.Ticketing,
) []core.Command {
	cmds := []core.Command{
		NewMemoryCommand(store),
		NewIssuesCommand(ticketing),
	}
	return append(cmds, NewHelpCommand(cmds))
}
