package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/permissions"
)

// PermissionMiddleware gates privileged and dev commands before they run.
// A denied actor gets an ephemeral embed and the command never executes.
func (c *ExtendedClient) PermissionMiddleware(ctx *CommandContext, cmd *Command) error {
	userID := ctx.User().ID

	if cmd.IsDev && !c.GetConfig().IsDev(userID) {
		ctx.ReplyEphemeral("This command is reserved for the bot developers.")
		logger.Warn(fmt.Sprintf("User %s tried to run dev command %s", userID, cmd.Name), "PermissionMiddleware")
		return permissions.ErrDenied
	}

	if !cmd.Privileged {
		return nil
	}

	if c.Services.Policy != nil && c.Services.Policy.Authorize(ctx.Actor(), permissions.Privileged) {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🚫 Access Denied",
		Description: "You need administrator permissions or an allow-list entry to use this command.",
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	ctx.ReplyEphemeralEmbed(embed)

	logger.Warn(fmt.Sprintf("User %s was denied command %s", userID, cmd.Name), "PermissionMiddleware")
	return permissions.ErrDenied
}
