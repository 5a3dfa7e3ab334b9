package handlers

import (
	"github.com/edgard/wabot/internal/bot"
)

// CommandNames lists every registered command in display order. The help
// handler renders this list; keep it in sync with RegisterAllCommands.
var CommandNames = []string{"alive", "help", "owner", "ping"}

// RegisterAllCommands initializes and returns the static command registry
// used by the dispatcher.
func RegisterAllCommands(deps HandlerDeps) map[string]bot.HandlerFunc {
	commands := map[string]bot.HandlerFunc{
		"alive": NewAliveHandler(deps),
		"help":  NewHelpHandler(deps),
		"owner": NewOwnerHandler(deps),
		"ping":  NewPingHandler(deps),
	}

	deps.Logger.Info("Registered bot commands", "count", len(commands))
	return commands
}
