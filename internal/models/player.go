package models

import (
	"time"
)

// PlayTimestampLayout is the layout the scraped source uses for play timestamps
const PlayTimestampLayout = "2006-01-02 03:04 PM"

// PlayerProfile is a scraped player keyed by their external player identifier
type PlayerProfile struct {
	// ExternalID is the identifier the scraped site uses for the player
	ExternalID string `json:"external_id"`

	// LinkedAccountID is the Discord user ID linked to this profile, empty when unlinked
	LinkedAccountID string `json:"linked_account_id,omitempty"`

	// DisplayName is the in-game player name
	DisplayName string `json:"display_name"`

	// SkillRating is the scraped rating (Volforce), nil until first seen on the leaderboard
	SkillRating *float64 `json:"skill_rating,omitempty"`

	// Rank is the arcade leaderboard position, nil when the player is not ranked
	Rank *int `json:"rank,omitempty"`

	// RecentPlays are the latest plays, most recent first
	RecentPlays []*Play `json:"recent_plays"`

	// LastUpdated is when the profile was last refreshed
	LastUpdated time.Time `json:"last_updated"`
}

// IsLinked reports whether a Discord account holds this profile
func (p *PlayerProfile) IsLinked() bool {
	return p.LinkedAccountID != ""
}

// LatestPlay returns the most recent play or nil
func (p *PlayerProfile) LatestPlay() *Play {
	if len(p.RecentPlays) == 0 {
		return nil
	}
	return p.RecentPlays[0]
}

// Clone returns a deep copy so callers can't mutate directory state
func (p *PlayerProfile) Clone() *PlayerProfile {
	if p == nil {
		return nil
	}

	out := *p
	if p.SkillRating != nil {
		rating := *p.SkillRating
		out.SkillRating = &rating
	}
	if p.Rank != nil {
		rank := *p.Rank
		out.Rank = &rank
	}
	out.RecentPlays = make([]*Play, 0, len(p.RecentPlays))
	for _, play := range p.RecentPlays {
		copied := *play
		out.RecentPlays = append(out.RecentPlays, &copied)
	}
	return &out
}

// Play is a single scraped chart play
type Play struct {
	// Title is the song title
	Title string `json:"title"`

	// Chart is the chart/difficulty label
	Chart string `json:"chart"`

	// ClearType is the clear mark (e.g. "UC", "EX")
	ClearType string `json:"clear_type,omitempty"`

	// Grade is the clear grade (e.g. "S", "AAA+")
	Grade string `json:"grade"`

	// Score is the displayed score
	Score string `json:"score"`

	// RatingDelta is the per-play rating value, nil when the site shows none
	RatingDelta *float64 `json:"rating_delta,omitempty"`

	// Timestamp is the play time as the site formats it
	Timestamp string `json:"timestamp"`

	// IsNewRecord is set upstream when the play was a personal best
	IsNewRecord bool `json:"is_new_record"`
}

// PlayedAt parses Timestamp in the given location
func (p *Play) PlayedAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(PlayTimestampLayout, p.Timestamp, loc)
}
