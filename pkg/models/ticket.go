package models

// TicketState enumerates lifecycle states for tickets
type TicketState string

const (
	TicketStateOpen    TicketState = "open"
	TicketStateClaimed TicketState = "claimed"
	TicketStateClosed  TicketState = "closed"
)

// TicketCategory enumerates the kinds of tickets users can open
type TicketCategory string

const (
	TicketGeneral  TicketCategory = "general-support"
	TicketBan      TicketCategory = "ban-appeal"
	TicketReport   TicketCategory = "report"
	TicketFeedback TicketCategory = "feedback"
	TicketOther    TicketCategory = "other"
)

// Label returns a human-readable name for the category
func (c TicketCategory) Label() string {
	switch c {
	case TicketGeneral:
		return "General Support"
	case TicketBan:
		return "Ban Appeal"
	case TicketReport:
		return "Report"
	case TicketFeedback:
		return "Feedback"
	case TicketOther:
		return "Other"
	default:
		return string(c)
	}
}

// Ticket is the persisted record of a support conversation. The Discord
// channel is a derived view of this record, not the other way around.
type Ticket struct {
	ID         string         `json:"id"`
	ChannelID  string         `json:"channelId"`
	OwnerID    string         `json:"ownerId"`
	OwnerName  string         `json:"ownerName"`
	Category   TicketCategory `json:"category"`
	State      TicketState    `json:"state"`
	ClaimantID string         `json:"claimantId,omitempty"`
	CreatedAt  int64          `json:"createdAt"`
}

// TicketsDocument maps a channel id to its ticket record
type TicketsDocument map[string]Ticket
