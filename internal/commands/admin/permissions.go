// Package admin - allow-list management commands
package admin

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createPermissionsCommand creates the /admin permissions subcommand
func createPermissionsCommand() *discord.Command {
	return discord.NewCommand(
		"permissions",
		"Grant a user command privileges",
		"admin",
		permissionsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to allow-list",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator).
		AsPrivileged()
}

func permissionsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := ctx.Client.Services.Policy.Grant(user.ID); err != nil {
		logger.Error("Failed to persist allow-list grant: "+err.Error(), "Admin")
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** can now use privileged commands.", user.Username))
}

// createRemovePermsCommand creates the /admin removeperms subcommand
func createRemovePermsCommand() *discord.Command {
	return discord.NewCommand(
		"removeperms",
		"Revoke a user's command privileges",
		"admin",
		removePermsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to remove from the allow-list",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator).
		AsPrivileged()
}

func removePermsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := ctx.Client.Services.Policy.Revoke(user.ID); err != nil {
		logger.Error("Failed to persist allow-list revoke: "+err.Error(), "Admin")
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** no longer has privileged command access.", user.Username))
}

// createListPermsCommand creates the /admin listperms subcommand
func createListPermsCommand() *discord.Command {
	return discord.NewCommand(
		"listperms",
		"List allow-listed users",
		"admin",
		listPermsHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator).
		AsPrivileged()
}

func listPermsHandler(ctx *discord.CommandContext) error {
	ids := ctx.Client.Services.Policy.Allowed()
	if len(ids) == 0 {
		return ctx.ReplyEphemeral("The allow-list is empty.")
	}

	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@"+id+">")
	}

	return ctx.ReplyEphemeral("Allow-listed users: " + strings.Join(mentions, ", "))
}
