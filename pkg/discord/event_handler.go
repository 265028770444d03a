// Package discord provides the event handler for managing Discord events.
package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// EventHandler manages event registration
type EventHandler struct {
	client *ExtendedClient
	events []interface{}
	mu     sync.RWMutex
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(client *ExtendedClient) *EventHandler {
	return &EventHandler{
		client: client,
		events: make([]interface{}, 0),
	}
}

// RegisterEvent adds an event handler to the Discord session
func (eh *EventHandler) RegisterEvent(handler interface{}) {
	eh.client.Session.AddHandler(handler)
	eh.mu.Lock()
	eh.events = append(eh.events, handler)
	eh.mu.Unlock()
	logger.Debug("Event registered", "EventHandler")
}

// Event handler types for common Discord events

// ReadyHandler is called when the bot is ready
type ReadyHandler func(s *discordgo.Session, r *discordgo.Ready)

// GuildCreateHandler is called when the bot joins a guild
type GuildCreateHandler func(s *discordgo.Session, g *discordgo.GuildCreate)

// GuildDeleteHandler is called when the bot leaves a guild
type GuildDeleteHandler func(s *discordgo.Session, g *discordgo.GuildDelete)

// MessageCreateHandler is called when a message is created
type MessageCreateHandler func(s *discordgo.Session, m *discordgo.MessageCreate)

// GuildMemberAddHandler is called when a member joins a guild
type GuildMemberAddHandler func(s *discordgo.Session, m *discordgo.GuildMemberAdd)

// GuildMemberRemoveHandler is called when a member leaves a guild
type GuildMemberRemoveHandler func(s *discordgo.Session, m *discordgo.GuildMemberRemove)

// OnReady registers a ready event handler
func (eh *EventHandler) OnReady(handler ReadyHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'Ready' registered", "EventHandler")
}

// OnGuildCreate registers a guild create event handler
func (eh *EventHandler) OnGuildCreate(handler GuildCreateHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildCreate' registered", "EventHandler")
}

// OnGuildDelete registers a guild delete event handler
func (eh *EventHandler) OnGuildDelete(handler GuildDeleteHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildDelete' registered", "EventHandler")
}

// OnMessageCreate registers a message create event handler
func (eh *EventHandler) OnMessageCreate(handler MessageCreateHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'MessageCreate' registered", "EventHandler")
}

// OnGuildMemberAdd registers a guild member add event handler
func (eh *EventHandler) OnGuildMemberAdd(handler GuildMemberAddHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildMemberAdd' registered", "EventHandler")
}

// OnGuildMemberRemove registers a guild member remove event handler
func (eh *EventHandler) OnGuildMemberRemove(handler GuildMemberRemoveHandler) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildMemberRemove' registered", "EventHandler")
}
