package models

import (
	"time"
)

// SessionStatus represents where a session is in its lifecycle
type SessionStatus string

const (
	// SessionStatusActive indicates the player currently holds the machine
	SessionStatusActive SessionStatus = "active"

	// SessionStatusOnBreak indicates the player paused with /break
	SessionStatusOnBreak SessionStatus = "on_break"

	// SessionStatusPendingBreak indicates the session went idle and will end soon
	SessionStatusPendingBreak SessionStatus = "pending_break"
)

// SessionType records how a session was started
type SessionType string

const (
	// SessionTypeManual is started by the check-in command
	SessionTypeManual SessionType = "manual"

	// SessionTypeAuto is started by a detected score
	SessionTypeAuto SessionType = "auto"
)

// SessionRecord tracks one linked account's play session
type SessionRecord struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// AccountID is the linked Discord user ID that owns the session
	AccountID string `json:"account_id"`

	// Status is the current lifecycle state
	Status SessionStatus `json:"status"`

	// Type is how the session was started
	Type SessionType `json:"type"`

	// StartTime is when the session was created
	StartTime time.Time `json:"start_time"`

	// LastActivity is the last transition or detected play
	LastActivity time.Time `json:"last_activity"`

	// InitialRating is the player's rating when the session started
	InitialRating *float64 `json:"initial_rating,omitempty"`

	// SongsPlayed counts plays detected while the session was held
	SongsPlayed int `json:"songs_played"`

	// ReminderSent guards against duplicate idle reminders
	ReminderSent bool `json:"reminder_sent"`
}

// IsActive reports whether the record holds the machine
func (r *SessionRecord) IsActive() bool {
	return r.Status == SessionStatusActive
}

// IsPaused reports whether the record is on any kind of break
func (r *SessionRecord) IsPaused() bool {
	return r.Status == SessionStatusOnBreak || r.Status == SessionStatusPendingBreak
}

// IdleFor returns how long the session has gone without activity at now
func (r *SessionRecord) IdleFor(now time.Time) time.Duration {
	return now.Sub(r.LastActivity)
}

// Clone returns a copy that shares no pointers with the receiver
func (r *SessionRecord) Clone() *SessionRecord {
	if r == nil {
		return nil
	}

	out := *r
	if r.InitialRating != nil {
		rating := *r.InitialRating
		out.InitialRating = &rating
	}
	return &out
}

// SessionSummary is computed when a session ends
type SessionSummary struct {
	SessionID   string
	AccountID   string
	ExternalID  string
	PlayerName  string
	Type        SessionType
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	SongsPlayed int

	// NewRecords are personal bests played during the session only
	NewRecords []*Play

	// Milestone is the highest tier crossed, empty when none
	Milestone string

	InitialRating *float64
	FinalRating   *float64
}

// RatingDelta returns final minus initial rating when both are known
func (s *SessionSummary) RatingDelta() (float64, bool) {
	if s.InitialRating == nil || s.FinalRating == nil {
		return 0, false
	}
	return *s.FinalRating - *s.InitialRating, true
}
