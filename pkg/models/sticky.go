package models

// StickyMessage is a message pinned to the bottom of a channel. The bot
// re-posts it after new activity and deletes the previous copy.
type StickyMessage struct {
	Content       string `json:"content"`
	LastMessageID string `json:"lastMessageId,omitempty"`
}

// StickyDocument maps a channel id to its sticky message
type StickyDocument map[string]StickyMessage
