// Package dev - /dev codegen command
package dev

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createCodeGenCommand creates the /dev codegen subcommand
func createCodeGenCommand() *discord.Command {
	return discord.NewCommand(
		"codegen",
		"Generate verification codes",
		"dev",
		codegenHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many codes to generate (1-10)",
			Required:    false,
			MinValue:    float64Ptr(1),
			MaxValue:    10,
		},
	).AsDev()
}

func codegenHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		amount := int(ctx.GetIntOption("amount"))
		if amount < 1 {
			amount = 1
		}

		var generated []string
		for i := 0; i < amount; i++ {
			code, err := ctx.Client.Services.Verify.Generate(ctx.User().ID)
			if err != nil {
				logger.Error(fmt.Sprintf("Error persisting generated code: %v", err), "DevCodeGen")
			}
			generated = append(generated, code.Code)
		}

		codesText := ""
		for _, code := range generated {
			codesText += fmt.Sprintf("`%s`\n", code)
		}

		embed := &discordgo.MessageEmbed{
			Title: "🎟️ Verification Codes Generated",
			Color: 0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  fmt.Sprintf("✅ Codes (%d)", len(generated)),
					Value: codesText,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Generated by %s", ctx.User().Username),
			},
		}

		if err := ctx.ReplyEphemeralEmbed(embed); err != nil {
			logger.Error(fmt.Sprintf("Error sending response: %v", err), "DevCodeGen")
		}

		logger.Info(fmt.Sprintf("User %s generated %d verification codes",
			ctx.User().Username, len(generated)), "DevCodeGen")
	}()

	return nil
}

// float64Ptr helper to take the address of a float64 literal
func float64Ptr(f float64) *float64 {
	return &f
}
