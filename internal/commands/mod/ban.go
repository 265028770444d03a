// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a user from the server",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days of messages to delete (0-7)",
			Required:    false,
			MinValue:    float64Ptr(0),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		AsPrivileged()
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason given"
	}

	days := int(ctx.GetIntOption("days"))

	// DM before the ban lands, afterwards the user is unreachable
	notifyPunishment(ctx, user.ID, "banned", reason)

	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to ban: %v", err))
	}

	recordModAction(ctx, audit.CategoryCommand, "🔨 User banned", user, reason)

	return ctx.Reply(fmt.Sprintf("🔨 **%s** has been banned.\n**Reason:** %s", user.Username, reason))
}
