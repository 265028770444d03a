// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// Register registers all moderation commands as /mod subcommands
func Register(client *discord.ExtendedClient) {
	banCmd := createBanCommand()
	kickCmd := createKickCommand()
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	removeWarnCmd := createRemoveWarnCommand()

	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		banCmd,
		kickCmd,
		warnCmd,
		warningsCmd,
		removeWarnCmd,
	)

	client.CommandHandler.AddGlobalCommand(modGroup)
}
