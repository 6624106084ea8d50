package commands

import (
	"sort"

	"github.com/mhtoin/pong-bot/internal/bot"
)

var Commands = make(map[string]*bot.Command)

func RegisterCommand(cmd *bot.Command) {
	Commands[cmd.Name] = cmd
}

// All returns the registered commands sorted by name.
func All() []*bot.Command {
	var cmds []*bot.Command
	for _, cmd := range Commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}
