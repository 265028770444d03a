package utils

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/verify"
)

// createVerifyCommand creates the top-level /verify command
func createVerifyCommand() *discord.Command {
	return discord.NewCommand(
		"verify",
		"Redeem a verification code",
		"utils",
		verifyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Your verification code",
			Required:    true,
		},
	)
}

// verifyHandler handles the /verify command
func verifyHandler(ctx *discord.CommandContext) error {
	code := ctx.GetStringOption("code")

	_, err := ctx.Client.Services.Verify.Redeem(code, ctx.User().ID)
	if errors.Is(err, verify.ErrCodeNotFound) {
		return ctx.ReplyEphemeral("❌ That code does not exist. Check for typos and try again.")
	}
	if errors.Is(err, verify.ErrCodeRedeemed) {
		return ctx.ReplyEphemeral("❌ That code has already been used.")
	}
	if err != nil {
		logger.Error("Failed to persist code redemption: "+err.Error(), "Verify")
	}

	roleID := ctx.Client.GetConfig().VerifiedRoleID
	if roleID != "" {
		if err := ctx.Session.GuildMemberRoleAdd(ctx.Interaction.GuildID, ctx.User().ID, roleID); err != nil {
			logger.Error("Failed to grant verified role: "+err.Error(), "Verify")
			return ctx.ReplyEphemeral("⚠️ Your code was accepted but the role could not be granted. Please contact staff.")
		}
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Welcome aboard, %s! You are now verified.", ctx.User().Username))
}
