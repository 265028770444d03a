// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/admin"
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/dev"
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/mod"
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/tickets"
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/utils"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils status, /utils help, /afk, /verify)
	utils.Register(client)

	// Ticket commands and components (/ticket panel, /ticket add, /ticket remove)
	tickets.Register(client)

	// Moderation commands (/mod ban, /mod kick, /mod warn, ...)
	mod.Register(client)

	// Administration commands (/admin permissions, /admin say, ...)
	admin.Register(client)

	// Developer commands, registered only in the dev guild
	dev.Register(client)
}
