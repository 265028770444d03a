// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// maxDisplayedWarnings caps the embed, not the stored sequence
const maxDisplayedWarnings = 25

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"List a user's warnings",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to inspect",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		AsPrivileged()
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	entries := ctx.Client.Services.Ledger.List(user.ID)
	if len(entries) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** has no warnings.", user.Username))
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("⚠️ Warnings for %s (%d)", user.Username, len(entries)),
		Color:     0xFFA500,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	shown := entries
	if len(shown) > maxDisplayedWarnings {
		shown = shown[:maxDisplayedWarnings]
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing the first %d of %d warnings", maxDisplayedWarnings, len(entries)),
		}
	}

	for _, w := range shown {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("ID %s | <t:%d:d>", w.ID, w.Timestamp),
			Value: fmt.Sprintf("%s\n*by %s*", w.Reason, w.Moderator),
		})
	}

	return ctx.ReplyEmbed(embed)
}
