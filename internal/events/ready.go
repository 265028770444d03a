// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/config"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
	client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s", r.User.Username), "Ready")
	logger.Info(fmt.Sprintf("📊 Connected to %d servers", len(r.Guilds)), "Ready")

	cfg := config.Get()
	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: cfg.BotStatus,
		Activities: []*discordgo.Activity{
			{
				Name: cfg.BotActivity,
				Type: discordgo.ActivityTypeWatching,
			},
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error setting presence: %v", err), "Ready")
		return
	}

	logger.Debug("Bot presence set", "Ready")
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}
