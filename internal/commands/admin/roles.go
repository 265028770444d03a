// Package admin - /admin addrole and /admin removerole commands
package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// createAddRoleCommand creates the /admin addrole subcommand
func createAddRoleCommand() *discord.Command {
	return discord.NewCommand(
		"addrole",
		"Give a role to a user",
		"admin",
		addRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to give the role to",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to give",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles).
		AsPrivileged()
}

func addRoleHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	role := ctx.GetRoleOption("role")
	if user == nil || role == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user and a role.")
	}

	if err := ctx.Session.GuildMemberRoleAdd(ctx.Interaction.GuildID, user.ID, role.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to add role: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** now has the **%s** role.", user.Username, role.Name))
}

// createRemoveRoleCommand creates the /admin removerole subcommand
func createRemoveRoleCommand() *discord.Command {
	return discord.NewCommand(
		"removerole",
		"Take a role from a user",
		"admin",
		removeRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to take the role from",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to take",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles).
		AsPrivileged()
}

func removeRoleHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	role := ctx.GetRoleOption("role")
	if user == nil || role == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user and a role.")
	}

	if err := ctx.Session.GuildMemberRoleRemove(ctx.Interaction.GuildID, user.ID, role.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to remove role: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** no longer has the **%s** role.", user.Username, role.Name))
}
