// Package mod - /mod kick command
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a user from the server",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers).
		AsPrivileged()
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason given"
	}

	notifyPunishment(ctx, user.ID, "kicked", reason)

	err := ctx.Session.GuildMemberDeleteWithReason(ctx.Interaction.GuildID, user.ID, reason)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to kick: %v", err))
	}

	recordModAction(ctx, audit.CategoryCommand, "👢 User kicked", user, reason)

	return ctx.Reply(fmt.Sprintf("👢 **%s** has been kicked.\n**Reason:** %s", user.Username, reason))
}

// notifyPunishment DMs the user about a moderation action, best-effort
func notifyPunishment(ctx *discord.CommandContext, userID, action, reason string) {
	go func() {
		channel, err := ctx.Session.UserChannelCreate(userID)
		if err != nil {
			logger.Debug("Could not open DM with "+userID+": "+err.Error(), "Mod")
			return
		}
		msg := fmt.Sprintf("You have been **%s** from the server.\n**Reason:** %s", action, reason)
		if _, err := ctx.Session.ChannelMessageSend(channel.ID, msg); err != nil {
			logger.Debug("Could not DM "+userID+": "+err.Error(), "Mod")
		}
	}()
}

// recordModAction forwards a moderation action to the audit log
func recordModAction(ctx *discord.CommandContext, category audit.Category, title string, user *discordgo.User, reason string) {
	if ctx.Client == nil || ctx.Client.Services.Audit == nil {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: 0xFF4500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Reason", Value: reason},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	ctx.Client.Services.Audit.Record(category, embed)
}

// float64Ptr helper to take the address of a float64 literal
func float64Ptr(f float64) *float64 {
	return &f
}
