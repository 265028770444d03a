// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server. Discord also fires
// this for every known guild on connect, so recent joins are filtered by
// join time.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot added to server: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removed from server ID: %s", g.ID), "Guild")
}
