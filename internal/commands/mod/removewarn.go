// Package mod - /mod removewarn command
package mod

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/warnings"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Remove a warning by id",
		"mod",
		removeWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User whose warning to remove",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "id",
			Description:  "Warning id",
			Required:     true,
			Autocomplete: true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		AsPrivileged().
		WithAutoComplete(removeWarnAutoComplete)
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	id := ctx.GetStringOption("id")
	removed, err := ctx.Client.Services.Ledger.Remove(user.ID, id)
	if errors.Is(err, warnings.ErrNotFound) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ **%s** has no warning with id `%s`.", user.Username, id))
	}
	if err != nil {
		logger.Error("Failed to persist warning removal: "+err.Error(), "Mod")
	}

	recordModAction(ctx, audit.CategoryCommand, "🧹 Warning removed", user, removed.Reason)

	return ctx.Reply(fmt.Sprintf("🧹 Removed warning `%s` from **%s**.\n**Was for:** %s",
		removed.ID, user.Username, removed.Reason))
}

// removeWarnAutoComplete suggests the target user's warning ids
func removeWarnAutoComplete(ctx *discord.CommandContext) {
	var userID, typed string
	for _, opt := range ctx.Interaction.ApplicationCommandData().Options {
		for _, sub := range opt.Options {
			switch sub.Name {
			case "user":
				userID, _ = sub.Value.(string)
			case "id":
				typed, _ = sub.Value.(string)
			}
		}
	}
	if userID == "" {
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
	for _, w := range ctx.Client.Services.Ledger.List(userID) {
		if typed != "" && !strings.HasPrefix(w.ID, typed) {
			continue
		}
		label := fmt.Sprintf("%s: %s", w.ID, w.Reason)
		if len(label) > 100 {
			label = label[:97] + "..."
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  label,
			Value: w.ID,
		})
		if len(choices) == 25 {
			break
		}
	}

	ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}
