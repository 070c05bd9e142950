package models

// MilestoneTier is a named rating class reached at Threshold
type MilestoneTier struct {
	// Name is the display name of the tier (e.g. "Scarlet I")
	Name string `yaml:"name" json:"name"`

	// Threshold is the minimum rating for the tier
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

// LeaderboardEntry is a ranked player as shown on the arcade leaderboard
type LeaderboardEntry struct {
	// Rank is the leaderboard position
	Rank int

	// ExternalID is the scraped player identifier
	ExternalID string

	// DisplayName is the in-game player name
	DisplayName string

	// SkillRating is the player's rating, nil if never scraped
	SkillRating *float64

	// LinkedAccountID is the Discord user holding the profile, if any
	LinkedAccountID string
}
