package scraper

import (
	"errors"

	"github.com/KirkDiggler/nowplaying/internal/models"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when the site has no page for the request.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the scraper answered with a server error after retrying.
	ErrUnavailable = errors.New("scraper unavailable")
)

// LeaderboardRow is one ranked player on the arcade leaderboard
type LeaderboardRow struct {
	ExternalID  string  `json:"external_id"`
	DisplayName string  `json:"display_name"`
	Rating      float64 `json:"rating"`
	Rank        int     `json:"rank"`
}

// FetchLeaderboardOutput contains the scraped leaderboard
type FetchLeaderboardOutput struct {
	Rows []*LeaderboardRow `json:"players"`
}

// FetchProfileInput contains parameters for fetching a profile
type FetchProfileInput struct {
	ExternalID string
}

// FetchProfileOutput contains a scraped profile
type FetchProfileOutput struct {
	// DisplayName is empty when the page had no name
	DisplayName string `json:"display_name"`

	// RecentPlays are most recent first
	RecentPlays []*models.Play `json:"recent_plays"`
}
