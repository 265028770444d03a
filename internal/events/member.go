// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/config"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 New member: %s in server %s", m.User.Username, m.GuildID), "Member")

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching server: %v", err), "Member")
		return
	}

	cfg := config.Get()
	welcomeChannel := cfg.WelcomeChannelID
	if welcomeChannel == "" {
		welcomeChannel = guild.SystemChannelID
	}

	if welcomeChannel != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "Welcome! 🎉",
			Description: fmt.Sprintf("Say hello to <@%s>\nWe are now **%d** members.", m.User.ID, guild.MemberCount),
			Color:       0x00ff00,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("128"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    guild.Name,
				IconURL: guild.IconURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, err := s.ChannelMessageSendEmbed(welcomeChannel, welcomeEmbed)
		if err != nil {
			logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Member")
		}
	}

	if bot != nil {
		bot.Services.Audit.Record(audit.CategoryCommand, &discordgo.MessageEmbed{
			Title:       "Member Joined",
			Description: fmt.Sprintf("<@%s> (%s)", m.User.ID, m.User.Username),
			Color:       0x2ecc71,
			Timestamp:   time.Now().Format(time.RFC3339),
		})
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Goodbye: %s left server %s", m.User.Username, m.GuildID), "Member")

	if bot != nil {
		bot.Services.Audit.Record(audit.CategoryCommand, &discordgo.MessageEmbed{
			Title:       "Member Left",
			Description: fmt.Sprintf("<@%s> (%s)", m.User.ID, m.User.Username),
			Color:       0xe74c3c,
			Timestamp:   time.Now().Format(time.RFC3339),
		})
	}
}
