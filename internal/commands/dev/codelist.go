// Package dev - /dev codelist command
package dev

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
)

// createCodeListCommand creates the /dev codelist subcommand
func createCodeListCommand() *discord.Command {
	return discord.NewCommand(
		"codelist",
		"List verification codes",
		"dev",
		codelistHandler,
	).AsDev()
}

func codelistHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		codes := ctx.Client.Services.Verify.List()
		if len(codes) == 0 {
			ctx.ReplyEphemeral("There are no verification codes.")
			return
		}

		var open, used string
		for _, code := range codes {
			if code.RedeemedBy == "" {
				open += fmt.Sprintf("`%s` created <t:%d:R>\n", code.Code, code.CreatedAt)
			} else {
				used += fmt.Sprintf("`%s` redeemed by <@%s> <t:%d:R>\n", code.Code, code.RedeemedBy, code.RedeemedAt)
			}
		}

		embed := &discordgo.MessageEmbed{
			Title:     fmt.Sprintf("🎟️ Verification Codes (%d)", len(codes)),
			Color:     0x1E90FF,
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if open != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Available", Value: open})
		}
		if used != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Redeemed", Value: used})
		}

		ctx.ReplyEphemeralEmbed(embed)
	}()

	return nil
}
