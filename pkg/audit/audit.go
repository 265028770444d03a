// Package audit posts moderation and ticket activity to the configured log
// channels. Recording is fire-and-forget: a missing destination or a failed
// send is logged for the operator and otherwise ignored.
package audit

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/mqtt"
)

// Category selects the destination channel for an entry
type Category string

const (
	CategoryCommand Category = "command"
	CategoryTicket  Category = "ticket"
)

// Logger delivers audit entries to Discord log channels and, when a broker
// is connected, mirrors them over MQTT for external tooling.
type Logger struct {
	session          *discordgo.Session
	commandChannelID string
	ticketChannelID  string
	broker           *mqtt.Communicator
}

// New builds an audit logger. Empty channel ids disable that category;
// a nil broker disables the MQTT mirror.
func New(session *discordgo.Session, commandChannelID, ticketChannelID string, broker *mqtt.Communicator) *Logger {
	return &Logger{
		session:          session,
		commandChannelID: commandChannelID,
		ticketChannelID:  ticketChannelID,
		broker:           broker,
	}
}

// mirrorEntry is the MQTT shape of an audit record
type mirrorEntry struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}

// Record sends an embed to the category's log channel. It never returns an
// error; callers must not depend on delivery.
func (a *Logger) Record(category Category, embed *discordgo.MessageEmbed) {
	if a == nil || embed == nil {
		return
	}

	channelID := a.commandChannelID
	if category == CategoryTicket {
		channelID = a.ticketChannelID
	}

	go func() {
		if channelID != "" && a.session != nil {
			if _, err := a.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
				logger.Warn("Failed to deliver audit entry: "+err.Error(), "Audit")
			}
		}

		if a.broker != nil && a.broker.IsConnected() {
			entry := mirrorEntry{
				Category:    string(category),
				Title:       embed.Title,
				Description: embed.Description,
				Timestamp:   time.Now().Unix(),
			}
			if err := a.broker.Publish("shorelinebot/audit/"+string(category), entry); err != nil {
				logger.Warn("Failed to mirror audit entry over MQTT: "+err.Error(), "Audit")
			}
		}
	}()
}
