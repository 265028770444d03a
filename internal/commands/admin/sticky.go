// Package admin - sticky message commands
package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createStickyCommand creates the /admin sticky subcommand
func createStickyCommand() *discord.Command {
	return discord.NewCommand(
		"sticky",
		"Pin a message that reposts after every new message in this channel",
		"admin",
		stickyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Content of the sticky message",
			Required:    true,
		},
	).AsPrivileged()
}

func stickyHandler(ctx *discord.CommandContext) error {
	content := ctx.GetStringOption("message")
	if content == "" {
		return ctx.ReplyEphemeral("❌ You must specify a message.")
	}

	channelID := ctx.Interaction.ChannelID
	if err := ctx.Client.Services.Sticky.Set(channelID, content); err != nil {
		logger.Error("Failed to persist sticky message: "+err.Error(), "Admin")
	}

	// post the first copy right away
	msg, err := ctx.Session.ChannelMessageSend(channelID, "📌 "+content)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to post the sticky message: %v", err))
	}
	if err := ctx.Client.Services.Sticky.TrackRepost(channelID, msg.ID); err != nil {
		logger.Error("Failed to track sticky repost: "+err.Error(), "Admin")
	}

	return ctx.ReplyEphemeral("✅ Sticky message set for this channel.")
}

// createUnstickyCommand creates the /admin unsticky subcommand
func createUnstickyCommand() *discord.Command {
	return discord.NewCommand(
		"unsticky",
		"Remove this channel's sticky message",
		"admin",
		unstickyHandler,
	).AsPrivileged()
}

func unstickyHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID

	entry, ok := ctx.Client.Services.Sticky.Get(channelID)
	if !ok {
		return ctx.ReplyEphemeral("This channel has no sticky message.")
	}

	if err := ctx.Client.Services.Sticky.Remove(channelID); err != nil {
		logger.Error("Failed to persist sticky removal: "+err.Error(), "Admin")
	}
	if entry.LastMessageID != "" {
		if err := ctx.Session.ChannelMessageDelete(channelID, entry.LastMessageID); err != nil {
			logger.Debug("Could not delete last sticky copy: "+err.Error(), "Admin")
		}
	}

	return ctx.ReplyEphemeral("✅ Sticky message removed.")
}
