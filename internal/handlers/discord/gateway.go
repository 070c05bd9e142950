package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/nowplaying/internal/handlers/discord Messenger
//go:generate mockgen -package=mocks -destination=mocks/mock_role_manager.go github.com/KirkDiggler/nowplaying/internal/handlers/discord RoleManager

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Messenger sends embeds to channels and users
type Messenger interface {
	// SendChannelEmbed posts an embed to a channel
	SendChannelEmbed(channelID string, embed *discordgo.MessageEmbed) error

	// SendDirectEmbed sends an embed as a direct message
	SendDirectEmbed(userID string, embed *discordgo.MessageEmbed) error
}

// RoleManager manages guild member roles
type RoleManager interface {
	// GuildRoles lists the roles of a guild
	GuildRoles(guildID string) ([]*discordgo.Role, error)

	// AddRole gives a member a role
	AddRole(guildID, userID, roleID string) error

	// RemoveRole takes a role away from a member
	RemoveRole(guildID, userID, roleID string) error
}

// Gateway adapts a discordgo session to Messenger and RoleManager
type Gateway struct {
	session *discordgo.Session
}

// NewSession creates a discordgo session for a bot token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsDirectMessages

	return session, nil
}

// NewGateway wraps a session as both a Messenger and a RoleManager
func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

// SendChannelEmbed posts an embed to a channel
func (g *Gateway) SendChannelEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := g.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// SendDirectEmbed opens a DM channel and posts an embed to it
func (g *Gateway) SendDirectEmbed(userID string, embed *discordgo.MessageEmbed) error {
	channel, err := g.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = g.session.ChannelMessageSendEmbed(channel.ID, embed)
	return err
}

// GuildRoles lists the roles of a guild
func (g *Gateway) GuildRoles(guildID string) ([]*discordgo.Role, error) {
	return g.session.GuildRoles(guildID)
}

// AddRole gives a member a role
func (g *Gateway) AddRole(guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleAdd(guildID, userID, roleID)
}

// RemoveRole takes a role away from a member
func (g *Gateway) RemoveRole(guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleRemove(guildID, userID, roleID)
}
