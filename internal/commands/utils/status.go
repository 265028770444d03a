package utils

import (
	"fmt"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot status",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

		ctx.Reply(fmt.Sprintf(
			"📊 **Bot Status**\n"+
				"• Bot: 🟢 Online\n"+
				"• Uptime: %s\n"+
				"• Servers: %d\n"+
				"• Open tickets: %d\n"+
				"• Warnings on record: %d",
			uptime,
			ctx.Client.GuildCount(),
			ctx.Client.Services.Tickets.Count(),
			ctx.Client.Services.Ledger.Count(),
		))
	}()
	return nil
}
