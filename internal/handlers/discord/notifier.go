package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/nowplaying/internal/services/notification"
)

// NotifierConfig holds configuration for the Discord notifier
type NotifierConfig struct {
	Messenger Messenger

	// Channel IDs, an empty channel disables that kind of message
	AdminAlertChannelID string
	SessionLogChannelID string
	MilestoneChannelID  string
}

// Notifier delivers notifications as Discord embeds
type Notifier struct {
	messenger           Messenger
	adminAlertChannelID string
	sessionLogChannelID string
	milestoneChannelID  string
}

var _ notification.Notifier = (*Notifier)(nil)

// NewNotifier creates a Discord notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	return &Notifier{
		messenger:           cfg.Messenger,
		adminAlertChannelID: cfg.AdminAlertChannelID,
		sessionLogChannelID: cfg.SessionLogChannelID,
		milestoneChannelID:  cfg.MilestoneChannelID,
	}, nil
}

// AlertAdmin posts a message to the admin alert channel
func (n *Notifier) AlertAdmin(ctx context.Context, input *notification.AlertAdminInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if n.adminAlertChannelID == "" {
		log.Printf("Admin alert channel not configured, dropping alert: %s", input.Message)
		return nil
	}

	if err := n.messenger.SendChannelEmbed(n.adminAlertChannelID, renderAlert(input.Message)); err != nil {
		return fmt.Errorf("failed to send admin alert: %w", err)
	}
	return nil
}

// RemindIdle DMs the session holder that their session went idle
func (n *Notifier) RemindIdle(ctx context.Context, input *notification.RemindIdleInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("account ID cannot be empty")
	}

	if err := n.messenger.SendDirectEmbed(input.AccountID, renderIdleReminder()); err != nil {
		return fmt.Errorf("failed to send idle reminder to %s: %w", input.AccountID, err)
	}
	return nil
}

// PostSessionSummary posts an automatically ended session to the log channel
func (n *Notifier) PostSessionSummary(ctx context.Context, input *notification.PostSessionSummaryInput) error {
	if input == nil || input.Summary == nil {
		return errors.New("summary cannot be nil")
	}

	if n.sessionLogChannelID == "" {
		log.Printf("Session log channel not configured, dropping summary for %s", input.Summary.AccountID)
		return nil
	}

	if err := n.messenger.SendChannelEmbed(n.sessionLogChannelID, renderAutoCheckoutSummary(input.Summary)); err != nil {
		return fmt.Errorf("failed to post session summary: %w", err)
	}
	return nil
}

// PostMilestone announces a milestone
func (n *Notifier) PostMilestone(ctx context.Context, input *notification.PostMilestoneInput) error {
	if input == nil || input.TierName == "" {
		return errors.New("tier name cannot be empty")
	}

	if n.milestoneChannelID == "" {
		log.Printf("Milestone channel not configured, dropping %s for %s", input.TierName, input.PlayerName)
		return nil
	}

	if err := n.messenger.SendChannelEmbed(n.milestoneChannelID, renderMilestone(input.PlayerName, input.TierName)); err != nil {
		return fmt.Errorf("failed to post milestone: %w", err)
	}
	return nil
}
