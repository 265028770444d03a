// Package tickets - /ticket panel, add and remove commands
package tickets

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	ticketspkg "github.com/ShorelineInteractive/ShorelineBotGo/pkg/tickets"
)

// panelCategories is the display order of the panel buttons
var panelCategories = []struct {
	Category models.TicketCategory
	Emoji    string
}{
	{models.TicketGeneral, "🎫"},
	{models.TicketBan, "⚖️"},
	{models.TicketReport, "🚨"},
	{models.TicketFeedback, "💡"},
	{models.TicketOther, "❓"},
}

// createPanelCommand creates the /ticket panel subcommand
func createPanelCommand() *discord.Command {
	return discord.NewCommand(
		"panel",
		"Post the ticket panel in this channel",
		"ticket",
		panelHandler,
	).AsPrivileged()
}

func panelHandler(ctx *discord.CommandContext) error {
	embed := &discordgo.MessageEmbed{
		Title: "🌊 Shoreline Support",
		Description: "Need help? Pick a category below to open a ticket.\n" +
			"A private channel will be created for you and our team.",
		Color: 0x1E90FF,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Shoreline Interactive | One open ticket per user",
		},
	}

	buttons := make([]discordgo.MessageComponent, 0, len(panelCategories))
	for _, entry := range panelCategories {
		buttons = append(buttons, discordgo.Button{
			Label:    entry.Category.Label(),
			Style:    discordgo.SecondaryButton,
			CustomID: createButtonPrefix + string(entry.Category),
			Emoji:    &discordgo.ComponentEmoji{Name: entry.Emoji},
		})
	}

	_, err := ctx.Session.ChannelMessageSendComplex(ctx.Interaction.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	})
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to post the panel: %v", err))
	}

	return ctx.ReplyEphemeral("✅ Ticket panel posted.")
}

// createAddCommand creates the /ticket add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Add a user or role to this ticket",
		"ticket",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionMentionable,
			Name:        "target",
			Description: "User or role to add",
			Required:    true,
		},
	).AsPrivileged()
}

func addHandler(ctx *discord.CommandContext) error {
	principalID, isRole, ok := mentionableOption(ctx, "target")
	if !ok {
		return ctx.ReplyEphemeral("❌ You must specify a user or role.")
	}

	err := ctx.Client.Services.Tickets.AddUser(ctx.Interaction.ChannelID, principalID, isRole)
	if err == ticketspkg.ErrNotTicket {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to add: %v", err))
	}

	mention := "<@" + principalID + ">"
	if isRole {
		mention = "<@&" + principalID + ">"
	}
	return ctx.Reply("➕ " + mention + " was added to the ticket.")
}

// createRemoveCommand creates the /ticket remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Remove a user or role from this ticket",
		"ticket",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionMentionable,
			Name:        "target",
			Description: "User or role to remove",
			Required:    true,
		},
	).AsPrivileged()
}

func removeHandler(ctx *discord.CommandContext) error {
	principalID, isRole, ok := mentionableOption(ctx, "target")
	if !ok {
		return ctx.ReplyEphemeral("❌ You must specify a user or role.")
	}

	err := ctx.Client.Services.Tickets.RemoveUser(ctx.Interaction.ChannelID, principalID)
	if err == ticketspkg.ErrNotTicket {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to remove: %v", err))
	}

	mention := "<@" + principalID + ">"
	if isRole {
		mention = "<@&" + principalID + ">"
	}
	return ctx.Reply("➖ " + mention + " was removed from the ticket.")
}

// mentionableOption resolves a mentionable option to (id, isRole)
func mentionableOption(ctx *discord.CommandContext, name string) (string, bool, bool) {
	opt := ctx.GetOption(name)
	if opt == nil {
		return "", false, false
	}
	id, ok := opt.Value.(string)
	if !ok || id == "" {
		return "", false, false
	}

	resolved := ctx.Interaction.ApplicationCommandData().Resolved
	if resolved != nil {
		if _, isRole := resolved.Roles[id]; isRole {
			return id, true, true
		}
	}
	return id, false, true
}
