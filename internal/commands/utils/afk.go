package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// createAfkCommand creates the top-level /afk command
func createAfkCommand() *discord.Command {
	return discord.NewCommand(
		"afk",
		"Mark yourself as away",
		"utils",
		afkHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Why you are away",
			Required:    false,
		},
	)
}

// afkHandler handles the /afk command. The status clears itself on the
// user's next message.
func afkHandler(ctx *discord.CommandContext) error {
	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "AFK"
	}

	ctx.Client.Services.AFK.Set(ctx.User().ID, reason)

	return ctx.Reply(fmt.Sprintf("💤 %s is now AFK: %s", ctx.User().Mention(), reason))
}
