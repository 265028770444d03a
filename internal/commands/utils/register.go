// Package utils provides general-purpose commands under /utils, plus the
// top-level /afk and /verify commands.
package utils

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// Register registers the utility command group and standalone commands
func Register(client *discord.ExtendedClient) {
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Utility commands",
		createPingCommand(),
		createStatusCommand(),
		createHelpCommand(),
	)
	client.CommandHandler.AddGlobalCommand(utilsGroup)

	client.CommandHandler.RegisterCommand(createAfkCommand())
	client.CommandHandler.RegisterCommand(createVerifyCommand())
}
