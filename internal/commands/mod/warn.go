// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		AsPrivileged()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ You must specify a reason.")
	}

	warning, err := ctx.Client.Services.Ledger.Warn(user.ID, ctx.User().ID, ctx.User().Username, reason)
	if err != nil {
		// the warning is recorded in memory, only persistence failed
		logger.Error("Failed to persist warning "+warning.ID+": "+err.Error(), "Mod")
	}

	recordModAction(ctx, audit.CategoryCommand, "⚠️ User warned", user, reason)

	return ctx.Reply(fmt.Sprintf("⚠️ **%s** has been warned.\n**Reason:** %s\n**Warning ID:** `%s`",
		user.Username,
		reason,
		warning.ID,
	))
}
