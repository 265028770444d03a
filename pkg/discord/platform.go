package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/tickets"
)

// channelPermissions maps the lifecycle's ACL to Discord permission bits
func channelPermissions(acl tickets.ACL) int64 {
	var allow int64
	if acl.View {
		allow |= discordgo.PermissionViewChannel
	}
	if acl.Send {
		allow |= discordgo.PermissionSendMessages
	}
	if acl.ReadHistory {
		allow |= discordgo.PermissionReadMessageHistory
	}
	return allow
}

// TicketPlatform adapts a discordgo session to the ticket lifecycle's
// Platform interface. It also delivers warning notifications.
type TicketPlatform struct {
	session  *discordgo.Session
	guildID  string
	parentID string
}

// NewTicketPlatform builds the adapter. parentID is the channel category
// ticket channels are created under.
func NewTicketPlatform(session *discordgo.Session, guildID, parentID string) *TicketPlatform {
	return &TicketPlatform{session: session, guildID: guildID, parentID: parentID}
}

func (p *TicketPlatform) CreateTicketChannel(name, topic string, overwrites []tickets.Overwrite) (string, error) {
	permissionOverwrites := make([]*discordgo.PermissionOverwrite, 0, len(overwrites))
	for _, ow := range overwrites {
		kind := discordgo.PermissionOverwriteTypeMember
		if ow.IsRole {
			kind = discordgo.PermissionOverwriteTypeRole
		}
		entry := &discordgo.PermissionOverwrite{
			ID:    ow.PrincipalID,
			Type:  kind,
			Allow: channelPermissions(ow.Allow),
		}
		if ow.DenyView {
			entry.Deny = discordgo.PermissionViewChannel
		}
		permissionOverwrites = append(permissionOverwrites, entry)
	}

	channel, err := p.session.GuildChannelCreateComplex(p.guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                topic,
		ParentID:             p.parentID,
		PermissionOverwrites: permissionOverwrites,
	})
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (p *TicketPlatform) DeleteChannel(channelID string) error {
	_, err := p.session.ChannelDelete(channelID)
	return err
}

func (p *TicketPlatform) EditChannelACL(channelID, principalID string, isRole bool, acl tickets.ACL) error {
	kind := discordgo.PermissionOverwriteTypeMember
	if isRole {
		kind = discordgo.PermissionOverwriteTypeRole
	}
	var deny int64
	if !acl.Send {
		deny = discordgo.PermissionSendMessages
	}
	return p.session.ChannelPermissionSet(channelID, principalID, kind, channelPermissions(acl), deny)
}

func (p *TicketPlatform) RemoveChannelACL(channelID, principalID string) error {
	return p.session.ChannelPermissionDelete(channelID, principalID)
}

func (p *TicketPlatform) HasViewAccess(channelID, userID string) bool {
	channel, err := p.channel(channelID)
	if err != nil {
		return false
	}
	for _, ow := range channel.PermissionOverwrites {
		if ow.Type == discordgo.PermissionOverwriteTypeMember && ow.ID == userID {
			return ow.Allow&discordgo.PermissionViewChannel != 0
		}
	}
	return false
}

func (p *TicketPlatform) SendMessage(channelID, content string) error {
	_, err := p.session.ChannelMessageSend(channelID, content)
	return err
}

func (p *TicketPlatform) FetchMessagesPage(channelID, beforeID string, limit int) ([]tickets.Message, error) {
	raw, err := p.session.ChannelMessages(channelID, limit, beforeID, "", "")
	if err != nil {
		return nil, err
	}

	page := make([]tickets.Message, 0, len(raw))
	for _, msg := range raw {
		attachments := make([]string, 0, len(msg.Attachments))
		for _, att := range msg.Attachments {
			attachments = append(attachments, att.URL)
		}
		name := msg.Author.Username
		if msg.Author.GlobalName != "" {
			name = msg.Author.GlobalName
		}
		page = append(page, tickets.Message{
			ID:          msg.ID,
			AuthorName:  name,
			Timestamp:   msg.Timestamp,
			Content:     msg.Content,
			Attachments: attachments,
		})
	}
	return page, nil
}

func (p *TicketPlatform) ChannelMemberOverwrites(channelID string) ([]tickets.Overwrite, error) {
	channel, err := p.channel(channelID)
	if err != nil {
		return nil, err
	}

	var out []tickets.Overwrite
	for _, ow := range channel.PermissionOverwrites {
		if ow.Type != discordgo.PermissionOverwriteTypeMember {
			continue
		}
		out = append(out, tickets.Overwrite{
			PrincipalID: ow.ID,
			Allow: tickets.ACL{
				View:        ow.Allow&discordgo.PermissionViewChannel != 0,
				Send:        ow.Allow&discordgo.PermissionSendMessages != 0,
				ReadHistory: ow.Allow&discordgo.PermissionReadMessageHistory != 0,
			},
		})
	}
	return out, nil
}

func (p *TicketPlatform) ResolveMember(userID string) (tickets.Member, error) {
	member, err := p.session.GuildMember(p.guildID, userID)
	if err != nil {
		return tickets.Member{}, err
	}

	name := member.User.Username
	if member.Nick != "" {
		name = member.Nick
	} else if member.User.GlobalName != "" {
		name = member.User.GlobalName
	}

	return tickets.Member{
		UserID:      userID,
		DisplayName: name,
		JoinedAt:    member.JoinedAt,
		RoleNames:   p.roleNames(member.Roles),
	}, nil
}

// SendDirectMessage delivers a DM best-effort; users with closed DMs are
// quietly skipped.
func (p *TicketPlatform) SendDirectMessage(userID, content string) {
	channel, err := p.session.UserChannelCreate(userID)
	if err != nil {
		logger.Debug("Could not open DM with "+userID+": "+err.Error(), "Platform")
		return
	}
	if _, err := p.session.ChannelMessageSend(channel.ID, content); err != nil {
		logger.Debug("Could not DM "+userID+": "+err.Error(), "Platform")
	}
}

// NotifyWarning DMs the warned user their new warning, best-effort
func (p *TicketPlatform) NotifyWarning(userID string, warning models.Warning) {
	channel, err := p.session.UserChannelCreate(userID)
	if err != nil {
		logger.Debug("Could not open DM with "+userID+": "+err.Error(), "Platform")
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ You received a warning",
		Description: warning.Reason,
		Color:       0xFFA500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Moderator", Value: warning.Moderator, Inline: true},
			{Name: "Warning ID", Value: warning.ID, Inline: true},
		},
		Timestamp: time.Unix(warning.Timestamp, 0).Format(time.RFC3339),
	}
	if _, err := p.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Debug("Could not DM warning to "+userID+": "+err.Error(), "Platform")
	}
}

// roleNames resolves role ids to names, skipping @everyone
func (p *TicketPlatform) roleNames(roleIDs []string) []string {
	guild, err := p.session.State.Guild(p.guildID)
	if err != nil {
		return nil
	}
	var names []string
	for _, id := range roleIDs {
		if id == p.guildID {
			continue
		}
		for _, role := range guild.Roles {
			if role.ID == id {
				names = append(names, role.Name)
				break
			}
		}
	}
	return names
}

// channel prefers the state cache and falls back to the API
func (p *TicketPlatform) channel(channelID string) (*discordgo.Channel, error) {
	if channel, err := p.session.State.Channel(channelID); err == nil {
		return channel, nil
	}
	channel, err := p.session.Channel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}
	return channel, nil
}
