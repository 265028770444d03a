// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, etc.)
package events

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// bot is the client the handlers operate on, set once during RegisterAll
var bot *discord.ExtendedClient

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	bot = client

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (AFK, sticky messages, ticket auto-add)
	RegisterMessageEvents(client)

	logger.Success("✅ All events registered", "Events")
}
