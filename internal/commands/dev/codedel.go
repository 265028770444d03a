// Package dev - /dev codedel command
package dev

import (
	goerrors "errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/verify"
)

// createCodeDelCommand creates the /dev codedel subcommand
func createCodeDelCommand() *discord.Command {
	return discord.NewCommand(
		"codedel",
		"Delete a verification code",
		"dev",
		codedelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Code to delete",
			Required:    true,
		},
	).AsDev()
}

func codedelHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		code := ctx.GetStringOption("code")
		err := ctx.Client.Services.Verify.Delete(code)
		if goerrors.Is(err, verify.ErrCodeNotFound) {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No code `%s` exists.", code))
			return
		}
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to delete: %v", err))
			return
		}

		ctx.ReplyEphemeral(fmt.Sprintf("🗑️ Code `%s` deleted.", code))
	}()

	return nil
}
