// Package admin - /admin say and /admin announce commands
package admin

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// createSayCommand creates the /admin say subcommand
func createSayCommand() *discord.Command {
	return discord.NewCommand(
		"say",
		"Make the bot say something in this channel",
		"admin",
		sayHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Message to send",
			Required:    true,
		},
	).AsPrivileged()
}

func sayHandler(ctx *discord.CommandContext) error {
	message := ctx.GetStringOption("message")
	if message == "" {
		return ctx.ReplyEphemeral("❌ You must specify a message.")
	}

	if _, err := ctx.Session.ChannelMessageSend(ctx.Interaction.ChannelID, message); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to send: %v", err))
	}

	return ctx.ReplyEphemeral("✅ Sent.")
}

// createAnnounceCommand creates the /admin announce subcommand
func createAnnounceCommand() *discord.Command {
	return discord.NewCommand(
		"announce",
		"Post an announcement embed to a channel",
		"admin",
		announceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to announce in",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
				discordgo.ChannelTypeGuildNews,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Announcement title",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Announcement body",
			Required:    true,
		},
	).AsPrivileged()
}

func announceHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📢 " + ctx.GetStringOption("title"),
		Description: ctx.GetStringOption("message"),
		Color:       0x1E90FF,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Shoreline Interactive",
		},
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to announce: %v", err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Announcement posted in <#%s>.", channel.ID))
}
