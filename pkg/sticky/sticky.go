// Package sticky manages per-channel sticky messages: a message the bot
// keeps re-posting at the bottom of a channel as new activity arrives.
package sticky

import (
	"sync"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

// documentName is the store document backing sticky messages
const documentName = "sticky"

// Manager owns the persisted sticky messages
type Manager struct {
	mu      sync.Mutex
	store   storage.Store
	entries models.StickyDocument
}

// NewManager loads sticky messages from the store
func NewManager(store storage.Store) (*Manager, error) {
	entries := models.StickyDocument{}
	if err := store.Load(documentName, &entries); err != nil {
		return nil, err
	}
	return &Manager{store: store, entries: entries}, nil
}

// Set installs or replaces the sticky message for a channel
func (m *Manager) Set(channelID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[channelID] = models.StickyMessage{Content: content}
	return m.store.Save(documentName, m.entries)
}

// Get returns the sticky message for a channel if one is set
func (m *Manager) Get(channelID string) (models.StickyMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.entries[channelID]
	return s, ok
}

// Remove deletes a channel's sticky message
func (m *Manager) Remove(channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[channelID]; !ok {
		return nil
	}
	delete(m.entries, channelID)
	return m.store.Save(documentName, m.entries)
}

// TrackRepost records the id of the bot's latest copy of the sticky so the
// previous one can be deleted on the next repost
func (m *Manager) TrackRepost(channelID, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.entries[channelID]
	if !ok {
		return nil
	}
	s.LastMessageID = messageID
	m.entries[channelID] = s
	return m.store.Save(documentName, m.entries)
}
