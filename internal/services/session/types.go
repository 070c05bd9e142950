package session

import (
	"time"

	"github.com/KirkDiggler/nowplaying/internal/models"
)

const (
	// DefaultIdleTimeout moves an active session to pending_break
	DefaultIdleTimeout = 5 * time.Minute

	// DefaultBreakTimeout ends a pending_break session
	DefaultBreakTimeout = 5 * time.Minute

	// DefaultOnBreakTimeout ends an abandoned on_break session
	DefaultOnBreakTimeout = 8 * time.Hour
)

// ScoreResult describes what a detected score did to the session store
type ScoreResult string

const (
	// ScoreResultIgnored means another account holds the machine
	ScoreResultIgnored ScoreResult = "ignored"

	// ScoreResultStarted means an auto session was created
	ScoreResultStarted ScoreResult = "started"

	// ScoreResultResumed means a paused session became active again
	ScoreResultResumed ScoreResult = "resumed"

	// ScoreResultCounted means the active session counted another play
	ScoreResultCounted ScoreResult = "counted"
)

// GetActiveOutput contains the active session, nil when the machine is free
type GetActiveOutput struct {
	Session *models.SessionRecord
}

// GetSessionInput identifies the account to look up
type GetSessionInput struct {
	AccountID string
}

// GetSessionOutput contains the account's session, nil when none exists
type GetSessionOutput struct {
	Session *models.SessionRecord
}

// ListSessionsOutput contains every stored session ordered by start time
type ListSessionsOutput struct {
	Sessions []*models.SessionRecord
}

// StartManualInput identifies the account checking in
type StartManualInput struct {
	AccountID string
}

// StartManualOutput contains the result of a check-in
type StartManualOutput struct {
	Success bool

	// Session is the new session on success
	Session *models.SessionRecord

	// HolderAccountID is the account holding the machine when Success is false
	HolderAccountID string
}

// ProcessNewScoreInput identifies the account a play was detected for
type ProcessNewScoreInput struct {
	AccountID string
}

// ProcessNewScoreOutput contains the effect of the detected play
type ProcessNewScoreOutput struct {
	Result  ScoreResult
	Session *models.SessionRecord
}

// PauseInput identifies the account taking a break
type PauseInput struct {
	AccountID string
}

// PauseOutput reports whether the session was paused
type PauseOutput struct {
	Success bool
}

// EndInput identifies the account to check out
type EndInput struct {
	AccountID string
}

// EndOutput contains the summary, nil when the account had no session
type EndOutput struct {
	Summary *models.SessionSummary
}

// SweepStaleOutput lists what a sweep changed
type SweepStaleOutput struct {
	// PendingBreak are accounts moved from active to pending_break
	PendingBreak []string

	// Reminded are accounts an idle reminder was sent to
	Reminded []string

	// Ended are summaries of sessions the sweep ended
	Ended []*models.SessionSummary
}
