// Package tickets implements the support-ticket lifecycle: creation,
// claiming, closing, reopening and deletion of ticket channels, plus
// transcript generation. Each ticket is a persisted record; the channel is
// a derived view of that record.
package tickets

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

var (
	// ErrAlreadyOpen is returned when the user already owns an open ticket
	ErrAlreadyOpen = errors.New("user already has an open ticket")
	// ErrNotTicket is returned when the channel has no ticket record
	ErrNotTicket = errors.New("channel is not a ticket")
	// ErrAlreadyClaimed is returned when a ticket was claimed before
	ErrAlreadyClaimed = errors.New("ticket is already claimed")
	// ErrOwnerNotFound is returned when the ticket owner cannot be resolved
	ErrOwnerNotFound = errors.New("ticket owner not found")
	// ErrTranscriptFailed is returned when channel history retrieval fails
	ErrTranscriptFailed = errors.New("transcript generation failed")
)

// documentName is the store document backing ticket records
const documentName = "tickets"

// DeleteDelay is how long a delete countdown runs before the channel goes
const DeleteDelay = 15 * time.Second

// Settings carries the guild identifiers the lifecycle needs
type Settings struct {
	EveryoneID    string
	SupportRoleID string
	ReportRoleID  string
}

// Manager owns all ticket records and drives channel state through the
// Platform. Mutations are serialized under one mutex.
type Manager struct {
	mu       sync.Mutex
	store    storage.Store
	platform Platform
	settings Settings
	tickets  models.TicketsDocument
}

// NewManager loads the ticket document from the store
func NewManager(store storage.Store, platform Platform, settings Settings) (*Manager, error) {
	tickets := models.TicketsDocument{}
	if err := store.Load(documentName, &tickets); err != nil {
		return nil, err
	}
	return &Manager{store: store, platform: platform, settings: settings, tickets: tickets}, nil
}

// memberACL is the access granted to the ticket owner and to users added
// later. Staff roles get the same grants.
var memberACL = ACL{View: true, Send: true, ReadHistory: true}

// Create opens a new ticket for the owner: it builds the channel with an
// ACL hiding it from the general membership and records the ticket.
// Returns ErrAlreadyOpen when the owner already has one.
func (m *Manager) Create(ownerID, ownerName string, category models.TicketCategory) (models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tickets {
		if t.OwnerID == ownerID {
			return models.Ticket{}, ErrAlreadyOpen
		}
	}

	overwrites := []Overwrite{
		{PrincipalID: m.settings.EveryoneID, IsRole: true, DenyView: true},
		{PrincipalID: ownerID, Allow: memberACL},
	}
	// Reports stay between the reporter and the report team; every other
	// category is visible to general support staff.
	if category == models.TicketReport {
		overwrites = append(overwrites, Overwrite{PrincipalID: m.settings.ReportRoleID, IsRole: true, Allow: memberACL})
	} else if m.settings.SupportRoleID != "" {
		overwrites = append(overwrites, Overwrite{PrincipalID: m.settings.SupportRoleID, IsRole: true, Allow: memberACL})
	}

	name := "ticket-" + slugify(ownerName)
	topic := fmt.Sprintf("%s | %s", category.Label(), ownerID)
	channelID, err := m.platform.CreateTicketChannel(name, topic, overwrites)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket := models.Ticket{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		OwnerID:   ownerID,
		OwnerName: ownerName,
		Category:  category,
		State:     models.TicketStateOpen,
		CreatedAt: time.Now().Unix(),
	}
	m.tickets[channelID] = ticket
	if err := m.store.Save(documentName, m.tickets); err != nil {
		return ticket, err
	}
	return ticket, nil
}

// CanClaim reports whether an actor may claim tickets: privileged actors
// and holders of the support or report role qualify.
func (m *Manager) CanClaim(isPrivileged bool, roleIDs []string) bool {
	if isPrivileged {
		return true
	}
	for _, id := range roleIDs {
		if id == m.settings.SupportRoleID || id == m.settings.ReportRoleID {
			return true
		}
	}
	return false
}

// Claim marks the ticket as taken by the claimant. Returns
// ErrAlreadyClaimed when someone beat them to it.
func (m *Manager) Claim(channelID, claimantID string) (models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[channelID]
	if !ok {
		return models.Ticket{}, ErrNotTicket
	}
	if ticket.State == models.TicketStateClaimed {
		return ticket, ErrAlreadyClaimed
	}
	ticket.State = models.TicketStateClaimed
	ticket.ClaimantID = claimantID
	m.tickets[channelID] = ticket
	if err := m.store.Save(documentName, m.tickets); err != nil {
		return ticket, err
	}
	return ticket, nil
}

// Close revokes the owner's send access so the conversation freezes while
// staff decide between reopening and deleting.
func (m *Manager) Close(channelID string) (models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[channelID]
	if !ok {
		return models.Ticket{}, ErrNotTicket
	}
	if err := m.platform.EditChannelACL(channelID, ticket.OwnerID, false, ACL{View: true, Send: false, ReadHistory: true}); err != nil {
		return ticket, err
	}
	ticket.State = models.TicketStateClosed
	m.tickets[channelID] = ticket
	if err := m.store.Save(documentName, m.tickets); err != nil {
		return ticket, err
	}
	return ticket, nil
}

// Reopen restores the owner's view and send access and returns the ticket
// to the open state. Returns ErrOwnerNotFound when the record carries no
// owner, which only happens to documents edited by hand.
func (m *Manager) Reopen(channelID string) (models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[channelID]
	if !ok {
		return models.Ticket{}, ErrNotTicket
	}
	if ticket.OwnerID == "" {
		return ticket, ErrOwnerNotFound
	}
	if err := m.platform.EditChannelACL(channelID, ticket.OwnerID, false, memberACL); err != nil {
		return ticket, err
	}
	ticket.State = models.TicketStateOpen
	ticket.ClaimantID = ""
	m.tickets[channelID] = ticket
	if err := m.store.Save(documentName, m.tickets); err != nil {
		return ticket, err
	}
	return ticket, nil
}

// Delete drops the ticket record now and schedules the channel deletion
// after DeleteDelay. The record is removed at invocation time so the log
// entry and the freed owner slot exist even if the deletion later fails;
// a failed deletion is logged and swallowed since nobody is listening.
func (m *Manager) Delete(channelID string) (models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[channelID]
	if !ok {
		return models.Ticket{}, ErrNotTicket
	}
	delete(m.tickets, channelID)
	if err := m.store.Save(documentName, m.tickets); err != nil {
		return ticket, err
	}

	time.AfterFunc(DeleteDelay, func() {
		if err := m.platform.DeleteChannel(channelID); err != nil {
			logger.Warn("Failed to delete ticket channel "+channelID+": "+err.Error(), "Tickets")
		}
	})
	return ticket, nil
}

// AutoAdd grants channel access to every mentioned user who cannot see the
// ticket yet. Each grant runs in its own goroutine so one failure cannot
// block the others; failures are logged and swallowed.
func (m *Manager) AutoAdd(channelID string, mentionedIDs []string) {
	m.mu.Lock()
	_, ok := m.tickets[channelID]
	m.mu.Unlock()
	if !ok {
		return
	}

	for _, userID := range mentionedIDs {
		if m.platform.HasViewAccess(channelID, userID) {
			continue
		}
		go func(userID string) {
			if err := m.platform.EditChannelACL(channelID, userID, false, memberACL); err != nil {
				logger.Warn("Failed to add mentioned user "+userID+" to ticket: "+err.Error(), "Tickets")
				return
			}
			if err := m.platform.SendMessage(channelID, fmt.Sprintf("➕ <@%s> was added to the ticket.", userID)); err != nil {
				logger.Warn("Failed to announce ticket addition: "+err.Error(), "Tickets")
			}
		}(userID)
	}
}

// AddUser grants a principal access to a ticket channel
func (m *Manager) AddUser(channelID, principalID string, isRole bool) error {
	m.mu.Lock()
	_, ok := m.tickets[channelID]
	m.mu.Unlock()
	if !ok {
		return ErrNotTicket
	}
	return m.platform.EditChannelACL(channelID, principalID, isRole, memberACL)
}

// RemoveUser revokes a principal's access to a ticket channel
func (m *Manager) RemoveUser(channelID, principalID string) error {
	m.mu.Lock()
	_, ok := m.tickets[channelID]
	m.mu.Unlock()
	if !ok {
		return ErrNotTicket
	}
	return m.platform.RemoveChannelACL(channelID, principalID)
}

// Get returns the ticket record for a channel
func (m *Manager) Get(channelID string) (models.Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[channelID]
	return ticket, ok
}

// OpenTicketFor returns the owner's current ticket, if any
func (m *Manager) OpenTicketFor(ownerID string) (models.Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tickets {
		if t.OwnerID == ownerID {
			return t, true
		}
	}
	return models.Ticket{}, false
}

// IsTicketChannel reports whether a channel has a ticket record
func (m *Manager) IsTicketChannel(channelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.tickets[channelID]
	return ok
}

// List returns a snapshot of every live ticket
func (m *Manager) List() []models.Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		out = append(out, t)
	}
	return out
}

// Count returns the number of live tickets
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tickets)
}

// slugify lowercases a display name into something a channel name accepts
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "user"
	}
	return slug
}
