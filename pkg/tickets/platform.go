package tickets

import "time"

// ACL is the channel-level access granted to a single principal
type ACL struct {
	View        bool
	Send        bool
	ReadHistory bool
}

// Overwrite is one principal's entry in a channel's access-control list
type Overwrite struct {
	PrincipalID string
	IsRole      bool
	Allow       ACL
	DenyView    bool
}

// Message is one entry of a channel's history as the transcript sees it
type Message struct {
	ID          string
	AuthorName  string
	Timestamp   time.Time
	Content     string
	Attachments []string
}

// Member is a resolved guild member for the transcript roster
type Member struct {
	UserID      string
	DisplayName string
	JoinedAt    time.Time
	RoleNames   []string
}

// Platform abstracts the chat client operations the ticket lifecycle
// drives. The Discord adapter implements it against a live session; tests
// implement it in memory.
type Platform interface {
	// CreateTicketChannel creates a text channel under the configured
	// parent with the given access-control list and returns its id.
	CreateTicketChannel(name, topic string, overwrites []Overwrite) (string, error)

	// DeleteChannel removes a channel. Deleting an already-gone channel
	// is not an error the caller cares about.
	DeleteChannel(channelID string) error

	// EditChannelACL sets a principal's access on a channel, creating the
	// entry when it does not exist.
	EditChannelACL(channelID, principalID string, isRole bool, acl ACL) error

	// RemoveChannelACL deletes a principal's entry from a channel
	RemoveChannelACL(channelID, principalID string) error

	// HasViewAccess reports whether the user can currently see the channel
	HasViewAccess(channelID, userID string) bool

	// SendMessage posts plain content to a channel
	SendMessage(channelID, content string) error

	// FetchMessagesPage returns up to limit messages posted before the
	// message with beforeID, newest first. An empty beforeID starts from
	// the most recent message.
	FetchMessagesPage(channelID, beforeID string, limit int) ([]Message, error)

	// ChannelMemberOverwrites returns the channel's individual (non-role)
	// ACL entries.
	ChannelMemberOverwrites(channelID string) ([]Overwrite, error)

	// ResolveMember looks up a guild member by user id
	ResolveMember(userID string) (Member, error)

	// SendDirectMessage delivers a DM best-effort. Failures are swallowed
	// by the implementation.
	SendDirectMessage(userID, content string)
}
