package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/nowplaying/internal/services/notification Notifier

import (
	"context"

	"github.com/KirkDiggler/nowplaying/internal/models"
)

// Notifier delivers session and system messages to the community
type Notifier interface {
	// AlertAdmin posts a message to the admin alert channel
	AlertAdmin(ctx context.Context, input *AlertAdminInput) error

	// RemindIdle sends an idle reminder to the session holder.
	// A nil error means the reminder was delivered.
	RemindIdle(ctx context.Context, input *RemindIdleInput) error

	// PostSessionSummary posts an ended session to the session log channel
	PostSessionSummary(ctx context.Context, input *PostSessionSummaryInput) error

	// PostMilestone announces a rating milestone
	PostMilestone(ctx context.Context, input *PostMilestoneInput) error
}

// AlertAdminInput contains an admin alert
type AlertAdminInput struct {
	Message string
}

// RemindIdleInput identifies who to remind
type RemindIdleInput struct {
	AccountID string
}

// PostSessionSummaryInput contains the summary to post
type PostSessionSummaryInput struct {
	Summary *models.SessionSummary
}

// PostMilestoneInput contains a milestone announcement
type PostMilestoneInput struct {
	PlayerName string
	TierName   string
}
