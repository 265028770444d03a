// Package admin - /admin addmulti and /admin removemulti commands
package admin

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// roleMentionPattern matches a role mention token like <@&123>
var roleMentionPattern = regexp.MustCompile(`^<@&(\d+)>$`)

// createAddMultiCommand creates the /admin addmulti subcommand
func createAddMultiCommand() *discord.Command {
	return discord.NewCommand(
		"addmulti",
		"Give multiple roles to a user (comma-separated mentions/ids/names)",
		"admin",
		addMultiHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Target user",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "roles",
			Description: "Comma-separated roles",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles).
		AsPrivileged()
}

func addMultiHandler(ctx *discord.CommandContext) error {
	return applyMultiRoles(ctx, "Add Multiple Roles", 0x2ecc71, ctx.Session.GuildMemberRoleAdd)
}

// createRemoveMultiCommand creates the /admin removemulti subcommand
func createRemoveMultiCommand() *discord.Command {
	return discord.NewCommand(
		"removemulti",
		"Take multiple roles from a user (comma-separated mentions/ids/names)",
		"admin",
		removeMultiHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Target user",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "roles",
			Description: "Comma-separated roles",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles).
		AsPrivileged()
}

func removeMultiHandler(ctx *discord.CommandContext) error {
	return applyMultiRoles(ctx, "Remove Multiple Roles", 0xe67e22, ctx.Session.GuildMemberRoleRemove)
}

// applyMultiRoles resolves each comma-separated token to a guild role and
// applies the operation, collecting successes and failures per token
func applyMultiRoles(ctx *discord.CommandContext, title string, color int, op func(guildID, userID, roleID string, options ...discordgo.RequestOption) error) error {
	user := ctx.GetUserOption("user")
	rolesString := ctx.GetStringOption("roles")
	if user == nil || rolesString == "" {
		return ctx.ReplyEphemeral("❌ You must specify a user and at least one role.")
	}

	guild := ctx.Guild()
	if guild == nil {
		return ctx.ReplyEphemeral("❌ This command can only be used in a server.")
	}

	var applied []string
	var failed []string
	for _, token := range strings.Split(rolesString, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		role := resolveRole(guild, token)
		if role == nil {
			failed = append(failed, token)
			continue
		}

		if err := op(guild.ID, user.ID, role.ID); err != nil {
			failed = append(failed, token)
			continue
		}
		applied = append(applied, role.Name)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Color:       color,
		Description: fmt.Sprintf("Applied: %s\nFailed: %s", listOrNone(applied), listOrNone(failed)),
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	recordAdminAction(ctx, embed)
	return ctx.ReplyEmbed(embed)
}

// resolveRole finds a guild role by mention, id or case-insensitive name
func resolveRole(guild *discordgo.Guild, token string) *discordgo.Role {
	id := token
	if m := roleMentionPattern.FindStringSubmatch(token); m != nil {
		id = m[1]
	}

	for _, role := range guild.Roles {
		if role.ID == id || strings.EqualFold(role.Name, token) {
			return role
		}
	}
	return nil
}

// recordAdminAction mirrors the action to the command log channel
func recordAdminAction(ctx *discord.CommandContext, embed *discordgo.MessageEmbed) {
	ctx.Client.Services.Audit.Record(audit.CategoryCommand, embed)
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
