package tickets

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// transcriptPageSize is the history fetch size per request
	transcriptPageSize = 100
	// transcriptMaxPages keeps a runaway channel from stalling the bot
	transcriptMaxPages = 200
)

// Transcript renders a ticket channel's full history oldest-to-newest as
// flat text, followed by a roster of every individual the channel's ACL
// lets view it. Retrieval failures surface as ErrTranscriptFailed; an
// empty channel yields a transcript with an empty body.
func (m *Manager) Transcript(channelID string) (string, error) {
	messages, err := m.fetchAllMessages(channelID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptFailed, err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	var b strings.Builder
	ticket, ok := m.Get(channelID)
	if ok {
		fmt.Fprintf(&b, "Transcript: %s (%s)\n", ticket.Category.Label(), ticket.OwnerName)
		fmt.Fprintf(&b, "Opened <t:%d>\n\n", ticket.CreatedAt)
	} else {
		fmt.Fprintf(&b, "Transcript: channel %s\n\n", channelID)
	}

	for _, msg := range messages {
		fmt.Fprintf(&b, "[%s] %s:\n", msg.Timestamp.UTC().Format("2006-01-02 15:04:05"), msg.AuthorName)
		if msg.Content != "" {
			for _, line := range strings.Split(msg.Content, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
		if len(msg.Attachments) > 0 {
			b.WriteString("    [attachments: " + strings.Join(msg.Attachments, ", ") + "]\n")
		}
	}

	b.WriteString(m.roster(channelID))
	return b.String(), nil
}

// fetchAllMessages pages backward from the most recent message until a
// short page terminates the walk. The page cap bounds pathological
// channels; whatever was collected by then is still returned.
func (m *Manager) fetchAllMessages(channelID string) ([]Message, error) {
	var all []Message
	beforeID := ""
	for page := 0; page < transcriptMaxPages; page++ {
		batch, err := m.platform.FetchMessagesPage(channelID, beforeID, transcriptPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < transcriptPageSize {
			break
		}
		beforeID = batch[len(batch)-1].ID
	}
	return all, nil
}

// roster lists every individual ACL entry with view access, resolved to a
// member record. Entries that no longer resolve are skipped.
func (m *Manager) roster(channelID string) string {
	overwrites, err := m.platform.ChannelMemberOverwrites(channelID)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n-- Participants --\n")
	for _, ow := range overwrites {
		if ow.IsRole || !ow.Allow.View {
			continue
		}
		member, err := m.platform.ResolveMember(ow.PrincipalID)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%s (joined %s)", member.DisplayName, member.JoinedAt.UTC().Format("2006-01-02"))
		if len(member.RoleNames) > 0 {
			line += " - " + strings.Join(member.RoleNames, ", ")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
