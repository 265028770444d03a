// Package tickets - button and modal handlers for the ticket lifecycle
package tickets

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/permissions"
	ticketspkg "github.com/ShorelineInteractive/ShorelineBotGo/pkg/tickets"
)

const (
	createButtonPrefix = "ticket_create_"
	modalPrefix        = "ticket_modal_"
	claimButtonID      = "claim_ticket"
	closeButtonID      = "close_ticket"
	reopenButtonID     = "reopen_ticket"
	transcriptButtonID = "save_transcript"
	deleteButtonID     = "delete_ticket"
)

// openTicketModal opens the short form after a panel button press
func openTicketModal(ctx *discord.CommandContext) error {
	category := strings.TrimPrefix(ctx.ComponentID(), createButtonPrefix)

	return ctx.ReplyModal(modalPrefix+category, "Open a Ticket",
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "reason",
				Label:       "Reason",
				Style:       discordgo.TextInputParagraph,
				Placeholder: "Explain why you are opening this ticket...",
				Required:    true,
				MaxLength:   1000,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "roblox",
				Label:       "Roblox Username",
				Style:       discordgo.TextInputShort,
				Placeholder: "Your Roblox username",
				Required:    true,
				MaxLength:   50,
			},
		}},
	)
}

// submitTicketModal creates the ticket channel from the submitted form
func submitTicketModal(ctx *discord.CommandContext) error {
	category := models.TicketCategory(strings.TrimPrefix(ctx.ComponentID(), modalPrefix))
	reason := ctx.ModalValue("reason")
	robloxName := ctx.ModalValue("roblox")
	user := ctx.User()

	ticket, err := ctx.Client.Services.Tickets.Create(user.ID, user.Username, category)
	if errors.Is(err, ticketspkg.ErrAlreadyOpen) {
		return ctx.ReplyEphemeral("❌ You already have an open ticket. Close it before opening another one.")
	}
	if err != nil {
		logger.Error("Failed to create ticket: "+err.Error(), "Tickets")
		return ctx.ReplyEphemeral("❌ Something went wrong creating your ticket. Please try again later.")
	}

	welcome := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s | %s", category.Label(), user.Username),
		Description: reason,
		Color:       0x1E90FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Opened by", Value: user.Mention(), Inline: true},
			{Name: "Category", Value: category.Label(), Inline: true},
			{Name: "Roblox Username", Value: robloxName, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "A team member will be with you shortly",
		},
	}

	_, err = ctx.Session.ChannelMessageSendComplex(ticket.ChannelID, &discordgo.MessageSend{
		Content: user.Mention(),
		Embeds:  []*discordgo.MessageEmbed{welcome},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Claim",
				Style:    discordgo.PrimaryButton,
				CustomID: claimButtonID,
				Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
			},
		}}},
	})
	if err != nil {
		logger.Warn("Failed to send ticket welcome message: "+err.Error(), "Tickets")
	}

	recordTicketAction(ctx, "🎫 Ticket opened", ticket, reason)

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Your ticket is ready: <#%s>", ticket.ChannelID))
}

// claimTicket handles the Claim button
func claimTicket(ctx *discord.CommandContext) error {
	manager := ctx.Client.Services.Tickets

	privileged := ctx.Client.Services.Policy.Authorize(ctx.Actor(), permissions.Privileged)
	var roleIDs []string
	if member := ctx.Member(); member != nil {
		roleIDs = member.Roles
	}
	if !manager.CanClaim(privileged, roleIDs) {
		return ctx.ReplyEphemeral("❌ Only support staff can claim tickets.")
	}

	ticket, err := manager.Claim(ctx.Interaction.ChannelID, ctx.User().ID)
	if errors.Is(err, ticketspkg.ErrAlreadyClaimed) {
		return ctx.ReplyEphemeral(fmt.Sprintf("This ticket is already claimed by <@%s>.", ticket.ClaimantID))
	}
	if errors.Is(err, ticketspkg.ErrNotTicket) {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		logger.Error("Failed to persist ticket claim: "+err.Error(), "Tickets")
	}

	// swap the Claim button for Close on the original message
	embeds := ctx.Interaction.Message.Embeds
	if len(embeds) > 0 {
		embeds[0].Fields = append(embeds[0].Fields, &discordgo.MessageEmbedField{
			Name: "Claimed by", Value: ctx.User().Mention(), Inline: true,
		})
	}
	if err := ctx.UpdateMessage(ctx.Interaction.Message.Content, embeds,
		[]discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Close",
				Style:    discordgo.DangerButton,
				CustomID: closeButtonID,
				Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
			},
		}}}); err != nil {
		logger.Warn("Failed to update claim message: "+err.Error(), "Tickets")
	}

	if _, err := ctx.Session.ChannelMessageSend(ctx.Interaction.ChannelID,
		fmt.Sprintf("🙋 %s claimed this ticket.", ctx.User().Mention())); err != nil {
		logger.Debug("Failed to announce claim: "+err.Error(), "Tickets")
	}

	recordTicketAction(ctx, "🙋 Ticket claimed", ticket, "")
	return nil
}

// closeTicket handles the Close button
func closeTicket(ctx *discord.CommandContext) error {
	ticket, err := ctx.Client.Services.Tickets.Close(ctx.Interaction.ChannelID)
	if errors.Is(err, ticketspkg.ErrNotTicket) {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		logger.Error("Failed to close ticket: "+err.Error(), "Tickets")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🔒 Ticket closed",
		Description: fmt.Sprintf("Closed by %s. What now?", ctx.User().Mention()),
		Color:       0xFFA500,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	err = ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Reopen",
					Style:    discordgo.SecondaryButton,
					CustomID: reopenButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "🔓"},
				},
				discordgo.Button{
					Label:    "Save Transcript",
					Style:    discordgo.SecondaryButton,
					CustomID: transcriptButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "📄"},
				},
				discordgo.Button{
					Label:    "Delete",
					Style:    discordgo.DangerButton,
					CustomID: deleteButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "⛔"},
				},
			}}},
		},
	})

	recordTicketAction(ctx, "🔒 Ticket closed", ticket, "")
	return err
}

// reopenTicket handles the Reopen button
func reopenTicket(ctx *discord.CommandContext) error {
	ticket, err := ctx.Client.Services.Tickets.Reopen(ctx.Interaction.ChannelID)
	if errors.Is(err, ticketspkg.ErrOwnerNotFound) {
		return ctx.ReplyEphemeral("❌ Could not determine the ticket owner; reopen it manually.")
	}
	if errors.Is(err, ticketspkg.ErrNotTicket) {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		logger.Error("Failed to reopen ticket: "+err.Error(), "Tickets")
	}

	recordTicketAction(ctx, "🔓 Ticket reopened", ticket, "")
	return ctx.Reply(fmt.Sprintf("🔓 Ticket reopened by %s. <@%s> can write again.", ctx.User().Mention(), ticket.OwnerID))
}

// saveTranscript handles the Save Transcript button
func saveTranscript(ctx *discord.CommandContext) error {
	logChannelID := ctx.Client.GetConfig().TicketLogChannelID
	if logChannelID == "" {
		return ctx.ReplyEphemeral("❌ No ticket log channel is configured.")
	}

	if err := ctx.DeferEphemeral(); err != nil {
		return err
	}

	channelID := ctx.Interaction.ChannelID
	transcript, err := ctx.Client.Services.Tickets.Transcript(channelID)
	if err != nil || transcript == "" {
		logger.Warn("Transcript generation failed for "+channelID, "Tickets")
		return ctx.EditReply("❌ Could not generate the transcript.")
	}

	_, err = ctx.Session.ChannelFileSend(
		logChannelID,
		fmt.Sprintf("transcript-%s.txt", channelID),
		bytes.NewReader([]byte(transcript)),
	)
	if err != nil {
		logger.Error("Failed to deliver transcript: "+err.Error(), "Tickets")
		return ctx.EditReply("❌ Could not deliver the transcript to the log channel.")
	}

	return ctx.EditReply(fmt.Sprintf("📄 Transcript saved to <#%s>.", logChannelID))
}

// deleteTicket handles the Delete button
func deleteTicket(ctx *discord.CommandContext) error {
	ticket, err := ctx.Client.Services.Tickets.Delete(ctx.Interaction.ChannelID)
	if errors.Is(err, ticketspkg.ErrNotTicket) {
		return ctx.ReplyEphemeral("❌ This channel is not a ticket.")
	}
	if err != nil {
		logger.Error("Failed to persist ticket deletion: "+err.Error(), "Tickets")
	}

	// logged now: even if the deferred deletion fails, a trail exists
	recordTicketAction(ctx, "⛔ Ticket deleted", ticket, "")

	return ctx.Reply(fmt.Sprintf("⛔ This channel will be deleted in %d seconds.",
		int(ticketspkg.DeleteDelay.Seconds())))
}

// recordTicketAction forwards a ticket lifecycle event to the audit log
func recordTicketAction(ctx *discord.CommandContext, title string, ticket models.Ticket, extra string) {
	if ctx.Client == nil || ctx.Client.Services.Audit == nil {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: 0x1E90FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Ticket", Value: ticket.ID, Inline: true},
			{Name: "Owner", Value: fmt.Sprintf("%s (%s)", ticket.OwnerName, ticket.OwnerID), Inline: true},
			{Name: "Category", Value: ticket.Category.Label(), Inline: true},
			{Name: "By", Value: ctx.User().Username, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if extra != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: extra})
	}
	ctx.Client.Services.Audit.Record(audit.CategoryTicket, embed)
}
