package utils

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"List the available commands",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	embed := &discordgo.MessageEmbed{
		Title: "🌊 ShorelineBot Commands",
		Color: 0x1E90FF,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🎫 Tickets",
				Value: "`/ticket panel` post the ticket panel (staff)\n" +
					"`/ticket add` / `/ticket remove` manage ticket access (staff)",
			},
			{
				Name: "🔨 Moderation (staff)",
				Value: "`/mod ban` `/mod kick` `/mod warn`\n" +
					"`/mod warnings` `/mod removewarn`",
			},
			{
				Name: "⚙️ Administration (staff)",
				Value: "`/admin permissions` `/admin removeperms` `/admin listperms`\n" +
					"`/admin say` `/admin announce` `/admin addrole` `/admin removerole`\n" +
					"`/admin sticky` `/admin unsticky`",
			},
			{
				Name: "💤 Everyone",
				Value: "`/afk` set your away status\n" +
					"`/verify` redeem a verification code\n" +
					"`/utils ping` `/utils status`",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Shoreline Interactive",
		},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}
