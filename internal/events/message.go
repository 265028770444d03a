// Package events provides event handlers for message events
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from bots
	if m.Author == nil || m.Author.Bot {
		return
	}

	if bot == nil {
		return
	}

	clearOwnAFK(s, m)
	announceMentionedAFK(s, m)
	autoAddTicketMentions(m)
	repostSticky(s, m)
}

// clearOwnAFK removes the author's AFK status on their first message back
func clearOwnAFK(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !bot.Services.AFK.Clear(m.Author.ID) {
		return
	}

	_, err := s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("👋 Welcome back <@%s>, your AFK status has been removed.", m.Author.ID))
	if err != nil {
		logger.Debug(fmt.Sprintf("Error sending AFK welcome back: %v", err), "Message")
	}
}

// announceMentionedAFK tells the author when they mention someone who is away
func announceMentionedAFK(s *discordgo.Session, m *discordgo.MessageCreate) {
	for _, mention := range m.Mentions {
		if mention.ID == m.Author.ID || mention.Bot {
			continue
		}

		entry, ok := bot.Services.AFK.Get(mention.ID)
		if !ok {
			continue
		}

		_, err := s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("💤 %s is AFK: %s (since <t:%d:R>)", mention.Username, entry.Reason, entry.Since.Unix()))
		if err != nil {
			logger.Debug(fmt.Sprintf("Error announcing AFK status: %v", err), "Message")
		}
	}
}

// autoAddTicketMentions grants channel access to users mentioned inside a
// ticket channel
func autoAddTicketMentions(m *discordgo.MessageCreate) {
	if len(m.Mentions) == 0 || !bot.Services.Tickets.IsTicketChannel(m.ChannelID) {
		return
	}

	ids := make([]string, 0, len(m.Mentions))
	for _, mention := range m.Mentions {
		if mention.Bot {
			continue
		}
		ids = append(ids, mention.ID)
	}

	if len(ids) == 0 {
		return
	}

	bot.Services.Tickets.AutoAdd(m.ChannelID, ids)

	mentions := make([]string, len(ids))
	for i, id := range ids {
		mentions[i] = "<@" + id + ">"
	}
	bot.Services.Audit.Record(audit.CategoryTicket, &discordgo.MessageEmbed{
		Title:       "➕ Users auto-added to ticket",
		Description: fmt.Sprintf("Channel: <#%s>\nAdded: %s\nMentioned by: <@%s>", m.ChannelID, strings.Join(mentions, ", "), m.Author.ID),
		Color:       0x1E90FF,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// repostSticky keeps the channel's sticky message at the bottom by deleting
// the previous copy and posting a fresh one after each user message
func repostSticky(s *discordgo.Session, m *discordgo.MessageCreate) {
	entry, ok := bot.Services.Sticky.Get(m.ChannelID)
	if !ok {
		return
	}

	if entry.LastMessageID != "" {
		if err := s.ChannelMessageDelete(m.ChannelID, entry.LastMessageID); err != nil {
			logger.Debug(fmt.Sprintf("Error deleting previous sticky copy: %v", err), "Message")
		}
	}

	msg, err := s.ChannelMessageSend(m.ChannelID, "📌 "+entry.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("Error reposting sticky message: %v", err), "Message")
		return
	}

	if err := bot.Services.Sticky.TrackRepost(m.ChannelID, msg.ID); err != nil {
		logger.Warn(fmt.Sprintf("Error persisting sticky repost: %v", err), "Message")
	}
}
