// Package admin provides server-management commands under /admin
package admin

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// Register registers all admin commands as /admin subcommands
func Register(client *discord.ExtendedClient) {
	adminGroup := client.CommandHandler.BuildCommandGroup(
		"admin",
		"Server administration commands",
		createPermissionsCommand(),
		createRemovePermsCommand(),
		createListPermsCommand(),
		createSayCommand(),
		createAnnounceCommand(),
		createAddRoleCommand(),
		createRemoveRoleCommand(),
		createAddMultiCommand(),
		createRemoveMultiCommand(),
		createStickyCommand(),
		createUnstickyCommand(),
	)

	client.CommandHandler.AddGlobalCommand(adminGroup)
}
