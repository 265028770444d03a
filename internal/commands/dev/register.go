// Package dev provides developer-only commands under /dev, registered only
// in the dev guild.
package dev

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// Register registers all dev commands as /dev subcommands
func Register(client *discord.ExtendedClient) {
	codegenCmd := createCodeGenCommand()
	codelistCmd := createCodeListCommand()
	codedelCmd := createCodeDelCommand()
	evalCmd := createEvalCommand()

	subcommands := []*discord.Command{codegenCmd, codelistCmd, codedelCmd, evalCmd}

	options := make([]*discordgo.ApplicationCommandOption, 0, len(subcommands))
	for _, cmd := range subcommands {
		client.Commands.Set("dev."+cmd.Name, cmd)
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		})
	}

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Developer commands",
		Options:     options,
	}

	client.CommandHandler.AddDevCommand(devGroup)
}
